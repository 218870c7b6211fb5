package pkg

import (
	"github.com/konveyor/linkedlist/pkg/list"
	"github.com/konveyor/linkedlist/pkg/logging"
	"github.com/konveyor/linkedlist/pkg/refcount"
)

//
// Set loggers.
func SetLogger(logger *logging.Logger) {
	list.Log = logger
	refcount.Log = logger
}
