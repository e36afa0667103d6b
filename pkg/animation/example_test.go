package animation_test

import (
	"fmt"
	"time"

	"github.com/tomortec/drift-expandable/pkg/animation"
)

// This example shows how to create and control an animation.
func ExampleAnimationController() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	controller.Curve = animation.EaseOut

	controller.AddListener(func() {
		fmt.Printf("Value: %.2f\n", controller.Value)
	})

	controller.Forward()
	controller.Dispose()
}

// This example shows an implicit value being retargeted. The second target
// takes over from wherever the first animation had reached.
func ExampleImplicitValue() {
	height := animation.NewImplicitValue(50, 350*time.Millisecond, animation.EaseInOut)
	defer height.Dispose()

	height.SetTarget(250)
	height.SetTarget(50)
	fmt.Println(height.Target())
	// Output: 50
}
