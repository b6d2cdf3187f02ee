package saturate

import "errors"

// ErrSaturatorNonConvergent is returned by Iterative when it hits the hard
// iteration cap before converging. The Cmds returned alongside it are the
// best estimate found, not a bogus zero value: callers should log and use
// them rather than block the control tick.
var ErrSaturatorNonConvergent = errors.New("saturate: iteration cap reached before convergence")
