// Command stencil generates project skeletons from archetype descriptors.
package main

func main() {
	Execute()
}
