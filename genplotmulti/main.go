package main

import (
	"github.com/jgbaldwinbrown/genericplotter/genplotmulti/pkg"
)

func main() {
	genplotmulti.FullPlotMulti()
}
