// Command paramak prints the builds, profiles and construction plan of a
// parametric reactor and assembles it on the sdfx kernel.
package main

func main() {
	Execute()
}
