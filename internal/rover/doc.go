// Package rover implements a single rover moving on a bounded integer grid.
//
// A rover holds immutable grid bounds, a position and a compass heading.
// Commands are processed one character at a time:
//
//   - 'L': rotate 90 degrees counter-clockwise
//   - 'R': rotate 90 degrees clockwise
//   - 'M': advance one unit along the heading if the grid allows it
//
// Any other character is skipped. A move that would leave the grid is a
// no-op and is reported to the registered [Observer]s as a rejected [Step].
//
// # Example
//
//	r, err := rover.New("5 5", rover.WithObserver(obs))
//	if err != nil {
//		return err
//	}
//	if err := r.SetPosition("1 2 N"); err != nil {
//		return err
//	}
//	r.ProcessInput("LMLMLMLMM")
//	fmt.Println(r.Position()) // 1 3 N
//
// # Thread Safety
//
// Rover instances are NOT thread-safe. A host sharing one rover between
// goroutines must serialize calls itself.
package rover
