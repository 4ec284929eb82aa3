package rover_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rover/internal/rover"
)

var _ = Describe("Rover", func() {
	var (
		r     *rover.Rover
		steps []rover.Step
	)

	BeforeEach(func() {
		steps = nil
		r = rover.MustNew("5 5", rover.WithObserver(rover.ObserverFunc(func(s rover.Step) {
			steps = append(steps, s)
		})))
	})

	It("starts at the origin facing north", func() {
		Expect(r.Position()).To(Equal("0 0 N"))
		Expect(r.Boundaries()).To(Equal("5 5"))
	})

	DescribeTable("command scenarios on a 5x5 grid",
		func(start, commands, want string) {
			Expect(r.SetPosition(start)).To(Succeed())
			r.ProcessInput(commands)
			Expect(r.Position()).To(Equal(want))
		},
		Entry("turn left and move", "1 2 N", "LM", "0 2 W"),
		Entry("turn right and move", "1 2 N", "RM", "2 2 E"),
		Entry("move forward three times", "1 2 E", "MMM", "4 2 E"),
		Entry("rover one", "1 2 N", "LMLMLMLMM", "1 3 N"),
		Entry("rover two", "3 3 E", "MMRMMRMRRM", "5 1 E"),
		Entry("move off the southern edge", "0 0 S", "M", "0 0 S"),
	)

	Context("rotation", func() {
		for _, cmd := range []string{"L", "R"} {
			It("returns to the start heading after four "+cmd+" turns", func() {
				for _, h := range rover.Headings() {
					start := "2 3 " + h.String()
					r.MustSetPosition(start)
					r.ProcessInput(strings.Repeat(cmd, 4))
					Expect(r.Position()).To(Equal(start))
				}
			})
		}
	})

	Context("when a move would leave the grid", func() {
		BeforeEach(func() {
			r.MustSetPosition("5 5 N")
			r.ProcessInput("MRM")
		})

		It("keeps the position", func() {
			Expect(r.Position()).To(Equal("5 5 E"))
		})

		It("reports every rejected move to observers", func() {
			Expect(steps).To(HaveLen(3))
			Expect(steps[0].Rejected).To(BeTrue())
			Expect(steps[1].Rejected).To(BeFalse())
			Expect(steps[2].Rejected).To(BeTrue())
			Expect(steps[2].From).To(Equal(steps[2].To))
		})
	})

	Context("with unrecognised characters", func() {
		It("skips them without notifying observers", func() {
			r.ProcessInput("xyz 123\t")
			Expect(steps).To(BeEmpty())
			Expect(r.Position()).To(Equal("0 0 N"))
		})
	})

	Context("with a malformed position", func() {
		It("fails without touching the rover", func() {
			r.MustSetPosition("1 1 W")
			Expect(r.SetPosition("1 1 Z")).To(MatchError(rover.ErrUnknownHeading))
			Expect(r.SetPosition("1")).To(MatchError(rover.ErrMalformedPosition))
			Expect(r.Position()).To(Equal("1 1 W"))
		})
	})

	It("panics on a malformed grid", func() {
		Expect(func() { rover.MustNew("five five") }).To(Panic())
	})
})
