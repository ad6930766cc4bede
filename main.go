// ixsel recommends database indexes for a workload of scans.
package main

import (
	"github.com/ixsel/ixsel/cmd"
)

func main() {
	cmd.Execute()
}
