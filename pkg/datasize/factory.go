package datasize

// Named factories, one per recognized unit.

func FromBytes(n float64) Size { return mustFromUnit(n, "B") }
func FromKilobytes(n float64) Size { return mustFromUnit(n, "kB") }
func FromMegabytes(n float64) Size { return mustFromUnit(n, "MB") }
func FromGigabytes(n float64) Size { return mustFromUnit(n, "GB") }
func FromTerabytes(n float64) Size { return mustFromUnit(n, "TB") }
func FromPetabytes(n float64) Size { return mustFromUnit(n, "PB") }
func FromExabytes(n float64) Size { return mustFromUnit(n, "EB") }
func FromZettabytes(n float64) Size { return mustFromUnit(n, "ZB") }
func FromYottabytes(n float64) Size { return mustFromUnit(n, "YB") }

func mustFromUnit(n float64, symbol string) Size {
	s, err := FromUnit(n, symbol)
	if err != nil {
		panic(err)
	}
	return s
}
