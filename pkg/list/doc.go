/*
Provides a generic linked list.

//
// New list.
l := list.New[*Person]()
defer l.Destroy()

//
// Append, insert.
err := l.Add(person)
err = l.AddAt(0, person)

//
// Insert keeping the list ordered.
byAge := list.CompareFunc[*Person](func(a, b *Person) int {
    return a.Age - b.Age
})
err = l.AddSorted(person, byAge)

//
// Iterate the list, removing as needed.
itr := l.Iter()
for itr.HasNext() {
    person, err := itr.Next()
    if err != nil {
        break
    }
    if person.Gone {
        err = itr.Remove()
    }
}

Values are handles owned by the caller. The list compares them
with == and never copies or releases what they refer to.
The list is not safe for concurrent use.
*/
package list

import "github.com/konveyor/linkedlist/pkg/logging"

var Log *logging.Logger

func init() {
	log := logging.WithName("list")
	log.Reset()
	Log = &log
}
