// Command layoutcalc is a thin host around package layout: it decodes a
// Container tree from JSON or YAML, runs layout.Calculate against a
// viewport size, and prints the resulting geometry.
package main

func main() {
	Execute()
}
