package main

import (
	"github.com/jgbaldwinbrown/genericplotter/genplot/pkg"
)

func main() {
	genplot.FullGenplot()
}
