// Package main is the entry point for the islviz CLI tool, which classifies
// OPTA match event logs and builds team and player action maps.
package main

import "github.com/rishavdey17/Streamlit-Indian-Super-League/cmd"

func main() {
	cmd.Execute()
}
