package section

// Unit conversions. Engines work in N, mm, N-mm and N/mm² internally and
// convert load records once at their entry point.

// KNmToNmm converts kN-m to N-mm.
func KNmToNmm(v float64) float64 { return v * 1e6 }

// NmmToKNm converts N-mm to kN-m.
func NmmToKNm(v float64) float64 { return v / 1e6 }

// KNToN converts kN to N.
func KNToN(v float64) float64 { return v * 1e3 }

// NToKN converts N to kN.
func NToKN(v float64) float64 { return v / 1e3 }
