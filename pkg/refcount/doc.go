// Registry
//   |__Entry (key, refs)
//   |__Entry (key, refs)
//
// Reference counting of opened resources. Each Ref() of a
// key adds a reference; each Release() drops one and the
// resource is closed when the last is released.
package refcount

import (
	"github.com/konveyor/linkedlist/pkg/logging"
)

var Log *logging.Logger

func init() {
	log := logging.WithName("refcount")
	log.Reset()
	Log = &log
}
