package alloc

import "errors"

// ErrUnknownThruster is returned by ForcesToCmds when a force entry names an
// Id the Config does not contain. A programmer error: the caller fed it a
// force map it didn't itself derive from the same Config.
var ErrUnknownThruster = errors.New("alloc: unknown thruster id")
