package utils_test

import (
	"fmt"
	"path"

	"deepcopier/utils"
)

func Example() {
	fmt.Println(utils.Second(path.Split("deepcopier/internal/fixture")))

	first, second := utils.Unpack2([]string{"pkg", "Name", "extra"})
	fmt.Println(first, second)

	first, second = utils.Unpack2([]string{"Name"})
	fmt.Printf("%q %q\n", first, second)

	fmt.Println(utils.IsInRange(1, 4, 256), utils.IsInRange(1, 0, 256), utils.IsInRange("a", "b", "c"))

	// Output:
	// fixture
	// pkg Name
	// "Name" ""
	// true false true
}
