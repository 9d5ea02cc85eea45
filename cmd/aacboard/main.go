// Command aacboard loads, navigates and edits AAC symbol boards.
package main

import "github.com/mesh-intelligence/aacboard/internal/cli"

func main() {
	cli.Execute()
}
