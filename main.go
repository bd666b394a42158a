/*****************************************************************************************************************/

//	@package	optics

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import "github.com/claude-module/optics/cmd"

/*****************************************************************************************************************/

func main() {
	cmd.Execute()
}

/*****************************************************************************************************************/
