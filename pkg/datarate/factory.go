package datarate

// Named factories, one per recognized unit. Byte-family factories set
// the byte display preference.

func FromBps(n float64) Rate { return mustFromUnit(n, "bps") }
func FromKbps(n float64) Rate { return mustFromUnit(n, "kbps") }
func FromMbps(n float64) Rate { return mustFromUnit(n, "Mbps") }
func FromGbps(n float64) Rate { return mustFromUnit(n, "Gbps") }
func FromTbps(n float64) Rate { return mustFromUnit(n, "Tbps") }
func FromPbps(n float64) Rate { return mustFromUnit(n, "Pbps") }
func FromEbps(n float64) Rate { return mustFromUnit(n, "Ebps") }
func FromZbps(n float64) Rate { return mustFromUnit(n, "Zbps") }
func FromYbps(n float64) Rate { return mustFromUnit(n, "Ybps") }

func FromBytesPS(n float64) Rate { return mustFromUnit(n, "Bps") }
func FromKBps(n float64) Rate { return mustFromUnit(n, "kBps") }
func FromMBps(n float64) Rate { return mustFromUnit(n, "MBps") }
func FromGBps(n float64) Rate { return mustFromUnit(n, "GBps") }
func FromTBps(n float64) Rate { return mustFromUnit(n, "TBps") }
func FromPBps(n float64) Rate { return mustFromUnit(n, "PBps") }
func FromEBps(n float64) Rate { return mustFromUnit(n, "EBps") }
func FromZBps(n float64) Rate { return mustFromUnit(n, "ZBps") }
func FromYBps(n float64) Rate { return mustFromUnit(n, "YBps") }

func mustFromUnit(n float64, symbol string) Rate {
	r, err := FromUnit(n, symbol)
	if err != nil {
		panic(err)
	}
	return r
}
