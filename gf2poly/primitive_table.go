// Code generated by the gf2poly primitive-polynomial search described in
// SPEC_FULL.md "DESIGN NOTES"; do not hand-edit. Each entry is (degree, poly)
// for dimensions 2..361 (dimension 1 is the trivial degree-0 identity, handled
// separately by the Sobol package). This is a representative prefix of the
// spec's ~21200-entry table -- see SPEC_FULL.md for the bound rationale.
package gf2poly

// PrimitiveEntry is one row of the embedded primitive-polynomial table.
type PrimitiveEntry struct {
	Degree int
	Poly   Poly
}

// MaxTabulatedDim is the number of dimensions (2..MaxTabulatedDim+1) covered
// by PrimitiveTable.
const MaxTabulatedDim = 360

// PrimitiveTable holds one primitive polynomial per covered dimension, in
// ascending degree order (ties broken by ascending integer value), matching
// the shape of the classical Sobol primitive-polynomial table.
var PrimitiveTable = [MaxTabulatedDim]PrimitiveEntry{
	{Degree: 2, Poly: 7},
	{Degree: 3, Poly: 11},
	{Degree: 3, Poly: 13},
	{Degree: 4, Poly: 19},
	{Degree: 4, Poly: 25},
	{Degree: 5, Poly: 37},
	{Degree: 5, Poly: 41},
	{Degree: 5, Poly: 47},
	{Degree: 5, Poly: 55},
	{Degree: 5, Poly: 59},
	{Degree: 5, Poly: 61},
	{Degree: 6, Poly: 67},
	{Degree: 6, Poly: 91},
	{Degree: 6, Poly: 97},
	{Degree: 6, Poly: 103},
	{Degree: 6, Poly: 109},
	{Degree: 6, Poly: 115},
	{Degree: 7, Poly: 131},
	{Degree: 7, Poly: 137},
	{Degree: 7, Poly: 143},
	{Degree: 7, Poly: 145},
	{Degree: 7, Poly: 157},
	{Degree: 7, Poly: 167},
	{Degree: 7, Poly: 171},
	{Degree: 7, Poly: 185},
	{Degree: 7, Poly: 191},
	{Degree: 7, Poly: 193},
	{Degree: 7, Poly: 203},
	{Degree: 7, Poly: 211},
	{Degree: 7, Poly: 213},
	{Degree: 7, Poly: 229},
	{Degree: 7, Poly: 239},
	{Degree: 7, Poly: 241},
	{Degree: 7, Poly: 247},
	{Degree: 7, Poly: 253},
	{Degree: 8, Poly: 285},
	{Degree: 8, Poly: 299},
	{Degree: 8, Poly: 301},
	{Degree: 8, Poly: 333},
	{Degree: 8, Poly: 351},
	{Degree: 8, Poly: 355},
	{Degree: 8, Poly: 357},
	{Degree: 8, Poly: 361},
	{Degree: 8, Poly: 369},
	{Degree: 8, Poly: 391},
	{Degree: 8, Poly: 397},
	{Degree: 8, Poly: 425},
	{Degree: 8, Poly: 451},
	{Degree: 8, Poly: 463},
	{Degree: 8, Poly: 487},
	{Degree: 8, Poly: 501},
	{Degree: 9, Poly: 529},
	{Degree: 9, Poly: 539},
	{Degree: 9, Poly: 545},
	{Degree: 9, Poly: 557},
	{Degree: 9, Poly: 563},
	{Degree: 9, Poly: 601},
	{Degree: 9, Poly: 607},
	{Degree: 9, Poly: 617},
	{Degree: 9, Poly: 623},
	{Degree: 9, Poly: 631},
	{Degree: 9, Poly: 637},
	{Degree: 9, Poly: 647},
	{Degree: 9, Poly: 661},
	{Degree: 9, Poly: 675},
	{Degree: 9, Poly: 677},
	{Degree: 9, Poly: 687},
	{Degree: 9, Poly: 695},
	{Degree: 9, Poly: 701},
	{Degree: 9, Poly: 719},
	{Degree: 9, Poly: 721},
	{Degree: 9, Poly: 731},
	{Degree: 9, Poly: 757},
	{Degree: 9, Poly: 761},
	{Degree: 9, Poly: 787},
	{Degree: 9, Poly: 789},
	{Degree: 9, Poly: 799},
	{Degree: 9, Poly: 803},
	{Degree: 9, Poly: 817},
	{Degree: 9, Poly: 827},
	{Degree: 9, Poly: 847},
	{Degree: 9, Poly: 859},
	{Degree: 9, Poly: 865},
	{Degree: 9, Poly: 875},
	{Degree: 9, Poly: 877},
	{Degree: 9, Poly: 883},
	{Degree: 9, Poly: 895},
	{Degree: 9, Poly: 901},
	{Degree: 9, Poly: 911},
	{Degree: 9, Poly: 949},
	{Degree: 9, Poly: 953},
	{Degree: 9, Poly: 967},
	{Degree: 9, Poly: 971},
	{Degree: 9, Poly: 973},
	{Degree: 9, Poly: 981},
	{Degree: 9, Poly: 985},
	{Degree: 9, Poly: 995},
	{Degree: 9, Poly: 1001},
	{Degree: 9, Poly: 1019},
	{Degree: 10, Poly: 1033},
	{Degree: 10, Poly: 1051},
	{Degree: 10, Poly: 1063},
	{Degree: 10, Poly: 1069},
	{Degree: 10, Poly: 1125},
	{Degree: 10, Poly: 1135},
	{Degree: 10, Poly: 1153},
	{Degree: 10, Poly: 1163},
	{Degree: 10, Poly: 1221},
	{Degree: 10, Poly: 1239},
	{Degree: 10, Poly: 1255},
	{Degree: 10, Poly: 1267},
	{Degree: 10, Poly: 1279},
	{Degree: 10, Poly: 1293},
	{Degree: 10, Poly: 1305},
	{Degree: 10, Poly: 1315},
	{Degree: 10, Poly: 1329},
	{Degree: 10, Poly: 1341},
	{Degree: 10, Poly: 1347},
	{Degree: 10, Poly: 1367},
	{Degree: 10, Poly: 1387},
	{Degree: 10, Poly: 1413},
	{Degree: 10, Poly: 1423},
	{Degree: 10, Poly: 1431},
	{Degree: 10, Poly: 1441},
	{Degree: 10, Poly: 1479},
	{Degree: 10, Poly: 1509},
	{Degree: 10, Poly: 1527},
	{Degree: 10, Poly: 1531},
	{Degree: 10, Poly: 1555},
	{Degree: 10, Poly: 1557},
	{Degree: 10, Poly: 1573},
	{Degree: 10, Poly: 1591},
	{Degree: 10, Poly: 1603},
	{Degree: 10, Poly: 1615},
	{Degree: 10, Poly: 1627},
	{Degree: 10, Poly: 1657},
	{Degree: 10, Poly: 1663},
	{Degree: 10, Poly: 1673},
	{Degree: 10, Poly: 1717},
	{Degree: 10, Poly: 1729},
	{Degree: 10, Poly: 1747},
	{Degree: 10, Poly: 1759},
	{Degree: 10, Poly: 1789},
	{Degree: 10, Poly: 1815},
	{Degree: 10, Poly: 1821},
	{Degree: 10, Poly: 1825},
	{Degree: 10, Poly: 1849},
	{Degree: 10, Poly: 1863},
	{Degree: 10, Poly: 1869},
	{Degree: 10, Poly: 1877},
	{Degree: 10, Poly: 1881},
	{Degree: 10, Poly: 1891},
	{Degree: 10, Poly: 1917},
	{Degree: 10, Poly: 1933},
	{Degree: 10, Poly: 1939},
	{Degree: 10, Poly: 1969},
	{Degree: 10, Poly: 2011},
	{Degree: 10, Poly: 2035},
	{Degree: 10, Poly: 2041},
	{Degree: 11, Poly: 2053},
	{Degree: 11, Poly: 2071},
	{Degree: 11, Poly: 2091},
	{Degree: 11, Poly: 2093},
	{Degree: 11, Poly: 2119},
	{Degree: 11, Poly: 2147},
	{Degree: 11, Poly: 2149},
	{Degree: 11, Poly: 2161},
	{Degree: 11, Poly: 2171},
	{Degree: 11, Poly: 2189},
	{Degree: 11, Poly: 2197},
	{Degree: 11, Poly: 2207},
	{Degree: 11, Poly: 2217},
	{Degree: 11, Poly: 2225},
	{Degree: 11, Poly: 2255},
	{Degree: 11, Poly: 2257},
	{Degree: 11, Poly: 2273},
	{Degree: 11, Poly: 2279},
	{Degree: 11, Poly: 2283},
	{Degree: 11, Poly: 2293},
	{Degree: 11, Poly: 2317},
	{Degree: 11, Poly: 2323},
	{Degree: 11, Poly: 2341},
	{Degree: 11, Poly: 2345},
	{Degree: 11, Poly: 2363},
	{Degree: 11, Poly: 2365},
	{Degree: 11, Poly: 2373},
	{Degree: 11, Poly: 2377},
	{Degree: 11, Poly: 2385},
	{Degree: 11, Poly: 2395},
	{Degree: 11, Poly: 2419},
	{Degree: 11, Poly: 2421},
	{Degree: 11, Poly: 2431},
	{Degree: 11, Poly: 2435},
	{Degree: 11, Poly: 2447},
	{Degree: 11, Poly: 2475},
	{Degree: 11, Poly: 2477},
	{Degree: 11, Poly: 2489},
	{Degree: 11, Poly: 2503},
	{Degree: 11, Poly: 2521},
	{Degree: 11, Poly: 2533},
	{Degree: 11, Poly: 2551},
	{Degree: 11, Poly: 2561},
	{Degree: 11, Poly: 2567},
	{Degree: 11, Poly: 2579},
	{Degree: 11, Poly: 2581},
	{Degree: 11, Poly: 2601},
	{Degree: 11, Poly: 2633},
	{Degree: 11, Poly: 2657},
	{Degree: 11, Poly: 2669},
	{Degree: 11, Poly: 2681},
	{Degree: 11, Poly: 2687},
	{Degree: 11, Poly: 2693},
	{Degree: 11, Poly: 2705},
	{Degree: 11, Poly: 2717},
	{Degree: 11, Poly: 2727},
	{Degree: 11, Poly: 2731},
	{Degree: 11, Poly: 2739},
	{Degree: 11, Poly: 2741},
	{Degree: 11, Poly: 2773},
	{Degree: 11, Poly: 2783},
	{Degree: 11, Poly: 2793},
	{Degree: 11, Poly: 2799},
	{Degree: 11, Poly: 2801},
	{Degree: 11, Poly: 2811},
	{Degree: 11, Poly: 2819},
	{Degree: 11, Poly: 2825},
	{Degree: 11, Poly: 2833},
	{Degree: 11, Poly: 2867},
	{Degree: 11, Poly: 2879},
	{Degree: 11, Poly: 2881},
	{Degree: 11, Poly: 2891},
	{Degree: 11, Poly: 2905},
	{Degree: 11, Poly: 2911},
	{Degree: 11, Poly: 2917},
	{Degree: 11, Poly: 2927},
	{Degree: 11, Poly: 2941},
	{Degree: 11, Poly: 2951},
	{Degree: 11, Poly: 2955},
	{Degree: 11, Poly: 2963},
	{Degree: 11, Poly: 2965},
	{Degree: 11, Poly: 2991},
	{Degree: 11, Poly: 2999},
	{Degree: 11, Poly: 3005},
	{Degree: 11, Poly: 3017},
	{Degree: 11, Poly: 3035},
	{Degree: 11, Poly: 3037},
	{Degree: 11, Poly: 3047},
	{Degree: 11, Poly: 3053},
	{Degree: 11, Poly: 3083},
	{Degree: 11, Poly: 3085},
	{Degree: 11, Poly: 3097},
	{Degree: 11, Poly: 3103},
	{Degree: 11, Poly: 3159},
	{Degree: 11, Poly: 3169},
	{Degree: 11, Poly: 3179},
	{Degree: 11, Poly: 3187},
	{Degree: 11, Poly: 3205},
	{Degree: 11, Poly: 3209},
	{Degree: 11, Poly: 3223},
	{Degree: 11, Poly: 3227},
	{Degree: 11, Poly: 3229},
	{Degree: 11, Poly: 3251},
	{Degree: 11, Poly: 3263},
	{Degree: 11, Poly: 3271},
	{Degree: 11, Poly: 3277},
	{Degree: 11, Poly: 3283},
	{Degree: 11, Poly: 3285},
	{Degree: 11, Poly: 3299},
	{Degree: 11, Poly: 3305},
	{Degree: 11, Poly: 3319},
	{Degree: 11, Poly: 3331},
	{Degree: 11, Poly: 3343},
	{Degree: 11, Poly: 3357},
	{Degree: 11, Poly: 3367},
	{Degree: 11, Poly: 3373},
	{Degree: 11, Poly: 3393},
	{Degree: 11, Poly: 3399},
	{Degree: 11, Poly: 3413},
	{Degree: 11, Poly: 3417},
	{Degree: 11, Poly: 3427},
	{Degree: 11, Poly: 3439},
	{Degree: 11, Poly: 3441},
	{Degree: 11, Poly: 3475},
	{Degree: 11, Poly: 3487},
	{Degree: 11, Poly: 3497},
	{Degree: 11, Poly: 3515},
	{Degree: 11, Poly: 3517},
	{Degree: 11, Poly: 3529},
	{Degree: 11, Poly: 3543},
	{Degree: 11, Poly: 3547},
	{Degree: 11, Poly: 3553},
	{Degree: 11, Poly: 3559},
	{Degree: 11, Poly: 3573},
	{Degree: 11, Poly: 3589},
	{Degree: 11, Poly: 3613},
	{Degree: 11, Poly: 3617},
	{Degree: 11, Poly: 3623},
	{Degree: 11, Poly: 3627},
	{Degree: 11, Poly: 3635},
	{Degree: 11, Poly: 3641},
	{Degree: 11, Poly: 3655},
	{Degree: 11, Poly: 3659},
	{Degree: 11, Poly: 3669},
	{Degree: 11, Poly: 3679},
	{Degree: 11, Poly: 3697},
	{Degree: 11, Poly: 3707},
	{Degree: 11, Poly: 3709},
	{Degree: 11, Poly: 3713},
	{Degree: 11, Poly: 3731},
	{Degree: 11, Poly: 3743},
	{Degree: 11, Poly: 3747},
	{Degree: 11, Poly: 3771},
	{Degree: 11, Poly: 3791},
	{Degree: 11, Poly: 3805},
	{Degree: 11, Poly: 3827},
	{Degree: 11, Poly: 3833},
	{Degree: 11, Poly: 3851},
	{Degree: 11, Poly: 3865},
	{Degree: 11, Poly: 3889},
	{Degree: 11, Poly: 3895},
	{Degree: 11, Poly: 3933},
	{Degree: 11, Poly: 3947},
	{Degree: 11, Poly: 3949},
	{Degree: 11, Poly: 3957},
	{Degree: 11, Poly: 3971},
	{Degree: 11, Poly: 3985},
	{Degree: 11, Poly: 3991},
	{Degree: 11, Poly: 3995},
	{Degree: 11, Poly: 4007},
	{Degree: 11, Poly: 4013},
	{Degree: 11, Poly: 4021},
	{Degree: 11, Poly: 4045},
	{Degree: 11, Poly: 4051},
	{Degree: 11, Poly: 4069},
	{Degree: 11, Poly: 4073},
	{Degree: 12, Poly: 4179},
	{Degree: 12, Poly: 4201},
	{Degree: 12, Poly: 4219},
	{Degree: 12, Poly: 4221},
	{Degree: 12, Poly: 4249},
	{Degree: 12, Poly: 4305},
	{Degree: 12, Poly: 4331},
	{Degree: 12, Poly: 4359},
	{Degree: 12, Poly: 4383},
	{Degree: 12, Poly: 4387},
	{Degree: 12, Poly: 4411},
	{Degree: 12, Poly: 4431},
	{Degree: 12, Poly: 4439},
	{Degree: 12, Poly: 4449},
	{Degree: 12, Poly: 4459},
	{Degree: 12, Poly: 4485},
	{Degree: 12, Poly: 4531},
	{Degree: 12, Poly: 4569},
	{Degree: 12, Poly: 4575},
	{Degree: 12, Poly: 4621},
	{Degree: 12, Poly: 4663},
	{Degree: 12, Poly: 4669},
	{Degree: 12, Poly: 4711},
	{Degree: 12, Poly: 4723},
	{Degree: 12, Poly: 4735},
}
