package main

import "food-storefront/cmd"

func main() {
	cmd.Execute()
}
