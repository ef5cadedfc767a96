// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import "errors"

// ErrNotStronglyConnected is returned by the bracket engine when it finds
// an empty bracket list at a non-root tree edge during cycle-equivalence
// classification. Under correct augmentation (every input graph is closed
// with a super-entry/super-exit back-edge before classification runs) this
// is unreachable; it is retained as an internal consistency check rather
// than removed.
var ErrNotStronglyConnected = errors.New("pst: bracket list empty at non-root tree edge: augmented graph is not strongly connected")
