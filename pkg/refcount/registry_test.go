package refcount

import (
	"errors"
	"github.com/onsi/gomega"
	"go.uber.org/multierr"
	"testing"
)

type Archive struct {
	Path string
}

type closer struct {
	closed []*Archive
	failOn *Archive
}

func (c *closer) Close(a *Archive) error {
	c.closed = append(c.closed, a)
	if a == c.failOn {
		return errors.New("busy")
	}
	return nil
}

func TestRegistry(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	c := &closer{}
	r := New[*Archive](c.Close)
	sd := &Archive{Path: "sdmc:/"}
	nand := &Archive{Path: "nand:/"}

	e := r.Ref(sd)
	g.Expect(e.Refs).To(gomega.Equal(1))
	g.Expect(e.ID).ToNot(gomega.BeEmpty())
	e2 := r.Ref(sd)
	g.Expect(e2).To(gomega.BeIdenticalTo(e))
	g.Expect(r.Refs(sd)).To(gomega.Equal(2))
	_ = r.Ref(nand)
	g.Expect(r.Len()).To(gomega.Equal(2))
	g.Expect(r.Refs(&Archive{Path: "sdmc:/"})).To(gomega.Equal(0))

	// Not the last reference.
	g.Expect(r.Release(sd)).To(gomega.Succeed())
	g.Expect(r.Refs(sd)).To(gomega.Equal(1))
	g.Expect(c.closed).To(gomega.BeEmpty())

	// Last reference.
	g.Expect(r.Release(sd)).To(gomega.Succeed())
	g.Expect(r.Refs(sd)).To(gomega.Equal(0))
	g.Expect(r.Len()).To(gomega.Equal(1))
	g.Expect(c.closed).To(gomega.Equal([]*Archive{sd}))

	// Untracked.
	other := &Archive{Path: "other:/"}
	g.Expect(r.Release(other)).To(gomega.Succeed())
	g.Expect(c.closed).To(gomega.Equal([]*Archive{sd, other}))
	g.Expect(r.Len()).To(gomega.Equal(1))
}

func TestRegistryEntries(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	r := New[string](nil)
	for _, key := range []string{"a", "b", "c", "b", "d", "c"} {
		_ = r.Ref(key)
	}
	keys := []string{}
	for _, e := range r.Entries() {
		keys = append(keys, e.Key)
	}
	g.Expect(keys).To(gomega.Equal([]string{"b", "c", "a", "d"}))
	g.Expect(r.Len()).To(gomega.Equal(4))

	// Registration order kept.
	g.Expect(r.Release("a")).To(gomega.Succeed())
	keys = []string{}
	for _, e := range r.Entries() {
		keys = append(keys, e.Key)
	}
	g.Expect(keys).To(gomega.Equal([]string{"b", "c", "d"}))
}

func TestRegistryClose(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	a := &Archive{Path: "a"}
	b := &Archive{Path: "b"}
	d := &Archive{Path: "d"}
	c := &closer{failOn: b}
	r := New[*Archive](c.Close)
	_ = r.Ref(a)
	_ = r.Ref(b)
	_ = r.Ref(b)
	_ = r.Ref(d)

	err := r.Close()
	g.Expect(err).ToNot(gomega.BeNil())
	g.Expect(multierr.Errors(err)).To(gomega.HaveLen(1))
	g.Expect(err.Error()).To(gomega.ContainSubstring("busy"))
	g.Expect(c.closed).To(gomega.Equal([]*Archive{a, b, d}))
	g.Expect(r.Len()).To(gomega.Equal(0))

	// Usable after close.
	_ = r.Ref(a)
	g.Expect(r.Refs(a)).To(gomega.Equal(1))
	c.failOn = a
	err = r.Release(a)
	g.Expect(err).ToNot(gomega.BeNil())
	g.Expect(err.Error()).To(gomega.Equal("close failed: busy"))
	g.Expect(r.Len()).To(gomega.Equal(0))
}
