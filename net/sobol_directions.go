// Code generated by an offline Sobol direction-number precomputation script
// (paired with gf2poly's primitive-polynomial table); DO NOT hand-edit.
package net

// SobolEntry holds one dimension's primitive polynomial degree, its full
// bit pattern (matching gf2poly.Poly), and its initial odd direction numbers
// m_1..m_deg (dimension 0, the van der Corput sequence, needs neither).
type SobolEntry struct {
	Degree int
	Poly   uint64
	M      []uint64
}

// MaxSobolDim is the number of tabulated Sobol dimensions.
const MaxSobolDim = 361

var sobolTable = [MaxSobolDim]SobolEntry{
	{Degree: 1, Poly: 0, M: []uint64{}},
	{Degree: 2, Poly: 7, M: []uint64{1, 1}},
	{Degree: 3, Poly: 11, M: []uint64{1, 1, 1}},
	{Degree: 3, Poly: 13, M: []uint64{1, 3, 1}},
	{Degree: 4, Poly: 19, M: []uint64{1, 1, 1, 13}},
	{Degree: 4, Poly: 25, M: []uint64{1, 1, 3, 3}},
	{Degree: 5, Poly: 37, M: []uint64{1, 1, 1, 7, 3}},
	{Degree: 5, Poly: 41, M: []uint64{1, 1, 3, 1, 9}},
	{Degree: 5, Poly: 47, M: []uint64{1, 3, 3, 3, 19}},
	{Degree: 5, Poly: 55, M: []uint64{1, 1, 3, 11, 7}},
	{Degree: 5, Poly: 59, M: []uint64{1, 1, 3, 15, 27}},
	{Degree: 5, Poly: 61, M: []uint64{1, 3, 7, 11, 19}},
	{Degree: 6, Poly: 67, M: []uint64{1, 1, 3, 3, 19, 63}},
	{Degree: 6, Poly: 91, M: []uint64{1, 3, 5, 3, 7, 53}},
	{Degree: 6, Poly: 97, M: []uint64{1, 3, 3, 15, 27, 5}},
	{Degree: 6, Poly: 103, M: []uint64{1, 3, 5, 11, 31, 59}},
	{Degree: 6, Poly: 109, M: []uint64{1, 1, 5, 15, 5, 7}},
	{Degree: 6, Poly: 115, M: []uint64{1, 3, 5, 13, 23, 3}},
	{Degree: 7, Poly: 131, M: []uint64{1, 3, 3, 3, 31, 7, 55}},
	{Degree: 7, Poly: 137, M: []uint64{1, 1, 3, 13, 25, 63, 21}},
	{Degree: 7, Poly: 143, M: []uint64{1, 3, 7, 9, 9, 55, 71}},
	{Degree: 7, Poly: 145, M: []uint64{1, 3, 7, 7, 9, 11, 45}},
	{Degree: 7, Poly: 157, M: []uint64{1, 1, 3, 1, 31, 23, 67}},
	{Degree: 7, Poly: 167, M: []uint64{1, 1, 3, 13, 23, 41, 33}},
	{Degree: 7, Poly: 171, M: []uint64{1, 3, 7, 13, 25, 51, 27}},
	{Degree: 7, Poly: 185, M: []uint64{1, 3, 1, 7, 5, 27, 113}},
	{Degree: 7, Poly: 191, M: []uint64{1, 1, 5, 1, 7, 1, 39}},
	{Degree: 7, Poly: 193, M: []uint64{1, 3, 1, 3, 13, 49, 39}},
	{Degree: 7, Poly: 203, M: []uint64{1, 3, 5, 15, 7, 15, 125}},
	{Degree: 7, Poly: 211, M: []uint64{1, 3, 7, 9, 5, 19, 27}},
	{Degree: 7, Poly: 213, M: []uint64{1, 3, 7, 5, 1, 27, 93}},
	{Degree: 7, Poly: 229, M: []uint64{1, 1, 5, 3, 17, 47, 43}},
	{Degree: 7, Poly: 239, M: []uint64{1, 1, 5, 7, 13, 31, 103}},
	{Degree: 7, Poly: 241, M: []uint64{1, 1, 7, 11, 1, 3, 71}},
	{Degree: 7, Poly: 247, M: []uint64{1, 3, 3, 11, 29, 45, 93}},
	{Degree: 7, Poly: 253, M: []uint64{1, 1, 1, 7, 31, 25, 87}},
	{Degree: 8, Poly: 285, M: []uint64{1, 3, 1, 15, 23, 11, 31, 199}},
	{Degree: 8, Poly: 299, M: []uint64{1, 3, 3, 13, 21, 11, 101, 237}},
	{Degree: 8, Poly: 301, M: []uint64{1, 1, 3, 5, 9, 3, 39, 239}},
	{Degree: 8, Poly: 333, M: []uint64{1, 3, 5, 5, 9, 3, 3, 53}},
	{Degree: 8, Poly: 351, M: []uint64{1, 3, 3, 7, 1, 33, 55, 149}},
	{Degree: 8, Poly: 355, M: []uint64{1, 3, 5, 13, 9, 7, 91, 235}},
	{Degree: 8, Poly: 357, M: []uint64{1, 1, 3, 1, 29, 23, 1, 77}},
	{Degree: 8, Poly: 361, M: []uint64{1, 1, 7, 3, 3, 41, 123, 55}},
	{Degree: 8, Poly: 369, M: []uint64{1, 1, 3, 9, 3, 13, 115, 15}},
	{Degree: 8, Poly: 391, M: []uint64{1, 3, 5, 7, 17, 57, 123, 127}},
	{Degree: 8, Poly: 397, M: []uint64{1, 1, 7, 5, 27, 15, 101, 227}},
	{Degree: 8, Poly: 425, M: []uint64{1, 1, 3, 13, 5, 27, 77, 63}},
	{Degree: 8, Poly: 451, M: []uint64{1, 3, 3, 9, 9, 59, 57, 49}},
	{Degree: 8, Poly: 463, M: []uint64{1, 3, 3, 7, 11, 55, 103, 173}},
	{Degree: 8, Poly: 487, M: []uint64{1, 1, 5, 11, 5, 47, 5, 173}},
	{Degree: 8, Poly: 501, M: []uint64{1, 3, 1, 13, 21, 37, 17, 57}},
	{Degree: 9, Poly: 529, M: []uint64{1, 1, 1, 9, 17, 5, 47, 139, 133}},
	{Degree: 9, Poly: 539, M: []uint64{1, 3, 7, 5, 31, 41, 23, 143, 59}},
	{Degree: 9, Poly: 545, M: []uint64{1, 3, 1, 9, 1, 11, 67, 43, 227}},
	{Degree: 9, Poly: 557, M: []uint64{1, 3, 1, 15, 1, 43, 107, 137, 133}},
	{Degree: 9, Poly: 563, M: []uint64{1, 1, 1, 5, 17, 7, 47, 103, 319}},
	{Degree: 9, Poly: 601, M: []uint64{1, 1, 5, 15, 11, 35, 89, 9, 257}},
	{Degree: 9, Poly: 607, M: []uint64{1, 1, 1, 7, 31, 31, 115, 55, 443}},
	{Degree: 9, Poly: 617, M: []uint64{1, 3, 5, 7, 15, 43, 51, 71, 415}},
	{Degree: 9, Poly: 623, M: []uint64{1, 1, 3, 1, 5, 33, 111, 83, 57}},
	{Degree: 9, Poly: 631, M: []uint64{1, 3, 5, 7, 19, 5, 117, 95, 161}},
	{Degree: 9, Poly: 637, M: []uint64{1, 3, 1, 9, 23, 43, 83, 125, 35}},
	{Degree: 9, Poly: 647, M: []uint64{1, 1, 5, 5, 1, 43, 97, 43, 487}},
	{Degree: 9, Poly: 661, M: []uint64{1, 1, 3, 1, 5, 33, 23, 73, 409}},
	{Degree: 9, Poly: 675, M: []uint64{1, 3, 1, 9, 19, 29, 21, 79, 399}},
	{Degree: 9, Poly: 677, M: []uint64{1, 3, 3, 9, 9, 5, 109, 71, 17}},
	{Degree: 9, Poly: 687, M: []uint64{1, 1, 1, 1, 9, 47, 27, 193, 463}},
	{Degree: 9, Poly: 695, M: []uint64{1, 1, 3, 15, 17, 1, 117, 35, 95}},
	{Degree: 9, Poly: 701, M: []uint64{1, 3, 5, 3, 17, 31, 53, 119, 471}},
	{Degree: 9, Poly: 719, M: []uint64{1, 3, 1, 15, 19, 5, 51, 39, 151}},
	{Degree: 9, Poly: 721, M: []uint64{1, 3, 5, 5, 1, 61, 15, 249, 275}},
	{Degree: 9, Poly: 731, M: []uint64{1, 1, 7, 9, 19, 59, 119, 239, 121}},
	{Degree: 9, Poly: 757, M: []uint64{1, 3, 1, 15, 1, 37, 117, 39, 461}},
	{Degree: 9, Poly: 761, M: []uint64{1, 3, 3, 7, 5, 11, 37, 135, 369}},
	{Degree: 9, Poly: 787, M: []uint64{1, 3, 1, 11, 15, 63, 125, 201, 25}},
	{Degree: 9, Poly: 789, M: []uint64{1, 1, 7, 15, 25, 39, 37, 213, 353}},
	{Degree: 9, Poly: 799, M: []uint64{1, 3, 1, 11, 1, 41, 87, 203, 123}},
	{Degree: 9, Poly: 803, M: []uint64{1, 1, 5, 9, 23, 9, 101, 199, 79}},
	{Degree: 9, Poly: 817, M: []uint64{1, 3, 5, 1, 17, 13, 13, 147, 153}},
	{Degree: 9, Poly: 827, M: []uint64{1, 3, 7, 11, 13, 47, 109, 15, 409}},
	{Degree: 9, Poly: 847, M: []uint64{1, 1, 1, 13, 29, 17, 73, 249, 51}},
	{Degree: 9, Poly: 859, M: []uint64{1, 1, 7, 13, 21, 37, 77, 131, 267}},
	{Degree: 9, Poly: 865, M: []uint64{1, 1, 5, 15, 25, 15, 43, 83, 77}},
	{Degree: 9, Poly: 875, M: []uint64{1, 3, 3, 15, 21, 57, 109, 71, 197}},
	{Degree: 9, Poly: 877, M: []uint64{1, 1, 3, 11, 5, 41, 61, 189, 265}},
	{Degree: 9, Poly: 883, M: []uint64{1, 1, 7, 13, 27, 27, 97, 139, 347}},
	{Degree: 9, Poly: 895, M: []uint64{1, 3, 5, 11, 9, 27, 23, 139, 255}},
	{Degree: 9, Poly: 901, M: []uint64{1, 3, 7, 13, 19, 3, 33, 17, 435}},
	{Degree: 9, Poly: 911, M: []uint64{1, 3, 1, 3, 25, 59, 115, 127, 111}},
	{Degree: 9, Poly: 949, M: []uint64{1, 1, 3, 3, 29, 11, 11, 1, 129}},
	{Degree: 9, Poly: 953, M: []uint64{1, 1, 5, 5, 17, 55, 29, 51, 73}},
	{Degree: 9, Poly: 967, M: []uint64{1, 1, 7, 9, 15, 1, 3, 155, 471}},
	{Degree: 9, Poly: 971, M: []uint64{1, 3, 3, 15, 15, 31, 7, 211, 315}},
	{Degree: 9, Poly: 973, M: []uint64{1, 1, 3, 15, 27, 11, 65, 117, 435}},
	{Degree: 9, Poly: 981, M: []uint64{1, 1, 7, 1, 21, 53, 93, 203, 203}},
	{Degree: 9, Poly: 985, M: []uint64{1, 3, 1, 7, 31, 25, 79, 99, 237}},
	{Degree: 9, Poly: 995, M: []uint64{1, 1, 5, 9, 7, 63, 47, 115, 497}},
	{Degree: 9, Poly: 1001, M: []uint64{1, 1, 3, 13, 3, 27, 7, 73, 425}},
	{Degree: 9, Poly: 1019, M: []uint64{1, 1, 3, 13, 29, 41, 29, 41, 169}},
	{Degree: 10, Poly: 1033, M: []uint64{1, 1, 3, 15, 3, 39, 97, 191, 339, 907}},
	{Degree: 10, Poly: 1051, M: []uint64{1, 1, 1, 3, 17, 11, 89, 215, 127, 425}},
	{Degree: 10, Poly: 1063, M: []uint64{1, 3, 5, 13, 5, 7, 121, 101, 381, 915}},
	{Degree: 10, Poly: 1069, M: []uint64{1, 3, 5, 15, 1, 53, 63, 207, 41, 769}},
	{Degree: 10, Poly: 1125, M: []uint64{1, 3, 1, 1, 17, 25, 17, 173, 371, 557}},
	{Degree: 10, Poly: 1135, M: []uint64{1, 1, 5, 11, 17, 39, 1, 33, 25, 479}},
	{Degree: 10, Poly: 1153, M: []uint64{1, 3, 7, 13, 17, 55, 127, 67, 509, 375}},
	{Degree: 10, Poly: 1163, M: []uint64{1, 3, 3, 7, 21, 41, 117, 185, 81, 405}},
	{Degree: 10, Poly: 1221, M: []uint64{1, 1, 3, 13, 5, 5, 123, 167, 165, 873}},
	{Degree: 10, Poly: 1239, M: []uint64{1, 1, 5, 3, 13, 13, 107, 255, 457, 355}},
	{Degree: 10, Poly: 1255, M: []uint64{1, 1, 7, 15, 15, 15, 75, 151, 287, 549}},
	{Degree: 10, Poly: 1267, M: []uint64{1, 3, 5, 7, 29, 31, 47, 125, 241, 315}},
	{Degree: 10, Poly: 1279, M: []uint64{1, 1, 5, 3, 25, 33, 63, 119, 103, 951}},
	{Degree: 10, Poly: 1293, M: []uint64{1, 1, 1, 15, 15, 57, 95, 21, 301, 477}},
	{Degree: 10, Poly: 1305, M: []uint64{1, 1, 3, 7, 5, 47, 45, 229, 267, 13}},
	{Degree: 10, Poly: 1315, M: []uint64{1, 3, 3, 1, 23, 43, 37, 23, 209, 523}},
	{Degree: 10, Poly: 1329, M: []uint64{1, 1, 1, 11, 27, 47, 47, 159, 79, 417}},
	{Degree: 10, Poly: 1341, M: []uint64{1, 3, 7, 3, 27, 13, 101, 79, 93, 335}},
	{Degree: 10, Poly: 1347, M: []uint64{1, 3, 7, 9, 19, 53, 13, 159, 365, 849}},
	{Degree: 10, Poly: 1367, M: []uint64{1, 1, 5, 7, 25, 51, 53, 3, 445, 321}},
	{Degree: 10, Poly: 1387, M: []uint64{1, 1, 1, 13, 23, 59, 41, 67, 15, 105}},
	{Degree: 10, Poly: 1413, M: []uint64{1, 3, 1, 11, 11, 19, 89, 145, 165, 351}},
	{Degree: 10, Poly: 1423, M: []uint64{1, 1, 7, 15, 13, 39, 33, 23, 495, 645}},
	{Degree: 10, Poly: 1431, M: []uint64{1, 3, 1, 5, 15, 51, 51, 243, 187, 447}},
	{Degree: 10, Poly: 1441, M: []uint64{1, 3, 3, 13, 23, 15, 39, 127, 197, 85}},
	{Degree: 10, Poly: 1479, M: []uint64{1, 3, 1, 13, 29, 39, 107, 157, 255, 871}},
	{Degree: 10, Poly: 1509, M: []uint64{1, 3, 7, 15, 11, 3, 1, 251, 477, 481}},
	{Degree: 10, Poly: 1527, M: []uint64{1, 3, 3, 15, 25, 13, 17, 65, 367, 881}},
	{Degree: 10, Poly: 1531, M: []uint64{1, 1, 7, 1, 3, 17, 21, 161, 81, 111}},
	{Degree: 10, Poly: 1555, M: []uint64{1, 1, 1, 3, 7, 25, 33, 251, 295, 339}},
	{Degree: 10, Poly: 1557, M: []uint64{1, 1, 5, 9, 11, 41, 71, 233, 147, 521}},
	{Degree: 10, Poly: 1573, M: []uint64{1, 1, 5, 7, 21, 47, 9, 101, 187, 827}},
	{Degree: 10, Poly: 1591, M: []uint64{1, 3, 5, 13, 11, 33, 29, 25, 369, 927}},
	{Degree: 10, Poly: 1603, M: []uint64{1, 3, 7, 11, 17, 49, 95, 75, 369, 677}},
	{Degree: 10, Poly: 1615, M: []uint64{1, 3, 3, 5, 3, 37, 65, 159, 321, 3}},
	{Degree: 10, Poly: 1627, M: []uint64{1, 1, 3, 9, 27, 53, 93, 25, 135, 1001}},
	{Degree: 10, Poly: 1657, M: []uint64{1, 1, 1, 1, 1, 45, 77, 55, 365, 459}},
	{Degree: 10, Poly: 1663, M: []uint64{1, 3, 3, 7, 23, 61, 41, 69, 15, 499}},
	{Degree: 10, Poly: 1673, M: []uint64{1, 3, 1, 3, 9, 35, 103, 135, 11, 115}},
	{Degree: 10, Poly: 1717, M: []uint64{1, 3, 7, 7, 11, 1, 11, 31, 25, 831}},
	{Degree: 10, Poly: 1729, M: []uint64{1, 1, 3, 1, 7, 1, 51, 73, 423, 409}},
	{Degree: 10, Poly: 1747, M: []uint64{1, 1, 5, 3, 19, 7, 123, 3, 385, 895}},
	{Degree: 10, Poly: 1759, M: []uint64{1, 1, 7, 5, 15, 13, 67, 119, 39, 253}},
	{Degree: 10, Poly: 1789, M: []uint64{1, 3, 1, 9, 27, 33, 75, 111, 87, 31}},
	{Degree: 10, Poly: 1815, M: []uint64{1, 3, 3, 7, 11, 41, 49, 199, 337, 489}},
	{Degree: 10, Poly: 1821, M: []uint64{1, 3, 7, 1, 1, 55, 59, 157, 217, 801}},
	{Degree: 10, Poly: 1825, M: []uint64{1, 1, 3, 1, 1, 15, 27, 83, 353, 291}},
	{Degree: 10, Poly: 1849, M: []uint64{1, 1, 1, 5, 3, 9, 11, 33, 373, 409}},
	{Degree: 10, Poly: 1863, M: []uint64{1, 3, 1, 7, 13, 27, 29, 17, 35, 179}},
	{Degree: 10, Poly: 1869, M: []uint64{1, 3, 1, 5, 7, 27, 75, 163, 345, 867}},
	{Degree: 10, Poly: 1877, M: []uint64{1, 1, 5, 9, 19, 7, 95, 165, 487, 589}},
	{Degree: 10, Poly: 1881, M: []uint64{1, 3, 1, 13, 7, 45, 121, 25, 221, 187}},
	{Degree: 10, Poly: 1891, M: []uint64{1, 1, 7, 1, 13, 37, 13, 3, 357, 1005}},
	{Degree: 10, Poly: 1917, M: []uint64{1, 3, 3, 15, 23, 33, 41, 145, 219, 475}},
	{Degree: 10, Poly: 1933, M: []uint64{1, 1, 1, 3, 31, 13, 83, 183, 97, 821}},
	{Degree: 10, Poly: 1939, M: []uint64{1, 1, 7, 1, 23, 27, 77, 135, 439, 351}},
	{Degree: 10, Poly: 1969, M: []uint64{1, 1, 7, 5, 3, 45, 83, 79, 461, 663}},
	{Degree: 10, Poly: 2011, M: []uint64{1, 3, 7, 9, 15, 17, 85, 237, 243, 393}},
	{Degree: 10, Poly: 2035, M: []uint64{1, 3, 3, 5, 15, 41, 89, 83, 241, 671}},
	{Degree: 10, Poly: 2041, M: []uint64{1, 3, 1, 5, 7, 25, 99, 77, 151, 619}},
	{Degree: 11, Poly: 2053, M: []uint64{1, 3, 5, 7, 7, 13, 71, 105, 397, 951, 139}},
	{Degree: 11, Poly: 2071, M: []uint64{1, 3, 7, 7, 19, 59, 5, 73, 263, 829, 23}},
	{Degree: 11, Poly: 2091, M: []uint64{1, 3, 7, 7, 15, 23, 31, 233, 443, 641, 1065}},
	{Degree: 11, Poly: 2093, M: []uint64{1, 3, 3, 13, 11, 33, 109, 247, 467, 41, 1677}},
	{Degree: 11, Poly: 2119, M: []uint64{1, 3, 1, 13, 31, 13, 9, 129, 223, 329, 819}},
	{Degree: 11, Poly: 2147, M: []uint64{1, 1, 7, 7, 31, 3, 95, 175, 421, 935, 861}},
	{Degree: 11, Poly: 2149, M: []uint64{1, 3, 1, 11, 3, 33, 71, 195, 409, 125, 55}},
	{Degree: 11, Poly: 2161, M: []uint64{1, 3, 7, 11, 17, 13, 57, 155, 411, 449, 1605}},
	{Degree: 11, Poly: 2171, M: []uint64{1, 1, 3, 5, 5, 25, 121, 115, 149, 723, 1693}},
	{Degree: 11, Poly: 2189, M: []uint64{1, 3, 3, 15, 23, 29, 69, 193, 259, 873, 761}},
	{Degree: 11, Poly: 2197, M: []uint64{1, 1, 5, 11, 15, 39, 83, 245, 497, 877, 349}},
	{Degree: 11, Poly: 2207, M: []uint64{1, 1, 5, 13, 3, 11, 83, 71, 353, 31, 47}},
	{Degree: 11, Poly: 2217, M: []uint64{1, 1, 5, 9, 7, 19, 59, 95, 463, 709, 625}},
	{Degree: 11, Poly: 2225, M: []uint64{1, 3, 3, 3, 19, 25, 127, 109, 81, 899, 479}},
	{Degree: 11, Poly: 2255, M: []uint64{1, 3, 7, 7, 9, 61, 127, 29, 495, 957, 591}},
	{Degree: 11, Poly: 2257, M: []uint64{1, 1, 7, 5, 1, 21, 83, 239, 509, 607, 1907}},
	{Degree: 11, Poly: 2273, M: []uint64{1, 3, 7, 3, 11, 47, 7, 11, 47, 677, 385}},
	{Degree: 11, Poly: 2279, M: []uint64{1, 3, 3, 1, 13, 53, 33, 173, 97, 749, 1399}},
	{Degree: 11, Poly: 2283, M: []uint64{1, 1, 5, 13, 21, 55, 65, 27, 297, 599, 1455}},
	{Degree: 11, Poly: 2293, M: []uint64{1, 3, 5, 9, 23, 27, 127, 61, 339, 393, 1299}},
	{Degree: 11, Poly: 2317, M: []uint64{1, 1, 1, 1, 25, 51, 13, 205, 307, 223, 25}},
	{Degree: 11, Poly: 2323, M: []uint64{1, 1, 7, 1, 25, 19, 21, 109, 41, 937, 713}},
	{Degree: 11, Poly: 2341, M: []uint64{1, 1, 1, 13, 7, 1, 95, 71, 317, 529, 1237}},
	{Degree: 11, Poly: 2345, M: []uint64{1, 3, 1, 11, 1, 55, 13, 255, 41, 243, 1725}},
	{Degree: 11, Poly: 2363, M: []uint64{1, 3, 1, 1, 25, 19, 121, 211, 105, 169, 1935}},
	{Degree: 11, Poly: 2365, M: []uint64{1, 1, 1, 13, 1, 1, 31, 45, 223, 249, 529}},
	{Degree: 11, Poly: 2373, M: []uint64{1, 1, 5, 7, 29, 23, 13, 187, 149, 173, 1201}},
	{Degree: 11, Poly: 2377, M: []uint64{1, 3, 5, 1, 3, 1, 15, 7, 81, 797, 1275}},
	{Degree: 11, Poly: 2385, M: []uint64{1, 1, 7, 1, 21, 47, 113, 241, 171, 297, 479}},
	{Degree: 11, Poly: 2395, M: []uint64{1, 1, 7, 15, 25, 57, 69, 171, 299, 573, 249}},
	{Degree: 11, Poly: 2419, M: []uint64{1, 1, 3, 9, 27, 31, 97, 199, 385, 479, 1849}},
	{Degree: 11, Poly: 2421, M: []uint64{1, 1, 5, 9, 17, 55, 41, 21, 295, 289, 603}},
	{Degree: 11, Poly: 2431, M: []uint64{1, 3, 5, 3, 31, 49, 51, 119, 317, 117, 1619}},
	{Degree: 11, Poly: 2435, M: []uint64{1, 1, 5, 1, 25, 59, 23, 181, 65, 477, 1631}},
	{Degree: 11, Poly: 2447, M: []uint64{1, 3, 7, 7, 13, 27, 49, 47, 185, 593, 1487}},
	{Degree: 11, Poly: 2475, M: []uint64{1, 3, 3, 7, 3, 63, 95, 55, 381, 949, 335}},
	{Degree: 11, Poly: 2477, M: []uint64{1, 3, 1, 11, 17, 3, 25, 17, 209, 995, 875}},
	{Degree: 11, Poly: 2489, M: []uint64{1, 3, 7, 3, 29, 17, 65, 19, 347, 411, 741}},
	{Degree: 11, Poly: 2503, M: []uint64{1, 1, 1, 1, 3, 47, 117, 249, 65, 813, 491}},
	{Degree: 11, Poly: 2521, M: []uint64{1, 3, 5, 7, 5, 51, 47, 229, 163, 759, 963}},
	{Degree: 11, Poly: 2533, M: []uint64{1, 1, 1, 9, 23, 7, 7, 25, 265, 991, 229}},
	{Degree: 11, Poly: 2551, M: []uint64{1, 1, 5, 1, 13, 39, 113, 53, 483, 663, 1523}},
	{Degree: 11, Poly: 2561, M: []uint64{1, 3, 1, 11, 31, 49, 43, 225, 245, 293, 51}},
	{Degree: 11, Poly: 2567, M: []uint64{1, 1, 1, 5, 15, 9, 95, 71, 457, 199, 1577}},
	{Degree: 11, Poly: 2579, M: []uint64{1, 1, 7, 11, 21, 29, 123, 59, 375, 293, 1359}},
	{Degree: 11, Poly: 2581, M: []uint64{1, 1, 3, 15, 9, 57, 39, 137, 429, 843, 1011}},
	{Degree: 11, Poly: 2601, M: []uint64{1, 1, 5, 9, 21, 21, 67, 251, 111, 651, 1869}},
	{Degree: 11, Poly: 2633, M: []uint64{1, 1, 3, 1, 13, 61, 73, 61, 263, 413, 1493}},
	{Degree: 11, Poly: 2657, M: []uint64{1, 3, 3, 7, 7, 49, 75, 213, 167, 117, 1203}},
	{Degree: 11, Poly: 2669, M: []uint64{1, 1, 7, 11, 9, 57, 1, 147, 191, 737, 1783}},
	{Degree: 11, Poly: 2681, M: []uint64{1, 3, 3, 9, 11, 17, 47, 117, 179, 403, 325}},
	{Degree: 11, Poly: 2687, M: []uint64{1, 3, 5, 5, 13, 17, 49, 157, 207, 21, 269}},
	{Degree: 11, Poly: 2693, M: []uint64{1, 1, 5, 11, 19, 63, 23, 7, 419, 977, 545}},
	{Degree: 11, Poly: 2705, M: []uint64{1, 1, 3, 11, 3, 21, 95, 3, 365, 913, 293}},
	{Degree: 11, Poly: 2717, M: []uint64{1, 3, 3, 11, 25, 7, 75, 55, 507, 915, 105}},
	{Degree: 11, Poly: 2727, M: []uint64{1, 1, 3, 3, 15, 23, 43, 53, 319, 513, 123}},
	{Degree: 11, Poly: 2731, M: []uint64{1, 1, 3, 9, 1, 59, 61, 227, 105, 719, 385}},
	{Degree: 11, Poly: 2739, M: []uint64{1, 1, 5, 3, 29, 63, 71, 57, 125, 249, 1661}},
	{Degree: 11, Poly: 2741, M: []uint64{1, 1, 3, 5, 29, 51, 43, 9, 399, 861, 149}},
	{Degree: 11, Poly: 2773, M: []uint64{1, 1, 5, 11, 25, 31, 85, 223, 329, 821, 219}},
	{Degree: 11, Poly: 2783, M: []uint64{1, 1, 5, 7, 27, 1, 93, 55, 191, 141, 1329}},
	{Degree: 11, Poly: 2793, M: []uint64{1, 1, 1, 7, 9, 53, 101, 233, 47, 83, 141}},
	{Degree: 11, Poly: 2799, M: []uint64{1, 3, 1, 3, 17, 15, 3, 223, 243, 81, 1177}},
	{Degree: 11, Poly: 2801, M: []uint64{1, 3, 5, 5, 7, 7, 69, 43, 477, 303, 1803}},
	{Degree: 11, Poly: 2811, M: []uint64{1, 1, 5, 13, 19, 35, 63, 45, 295, 931, 907}},
	{Degree: 11, Poly: 2819, M: []uint64{1, 1, 5, 15, 19, 61, 121, 159, 31, 497, 1367}},
	{Degree: 11, Poly: 2825, M: []uint64{1, 1, 7, 13, 1, 45, 41, 123, 331, 667, 2013}},
	{Degree: 11, Poly: 2833, M: []uint64{1, 3, 3, 9, 3, 3, 41, 35, 357, 901, 255}},
	{Degree: 11, Poly: 2867, M: []uint64{1, 3, 5, 3, 15, 19, 107, 173, 361, 287, 829}},
	{Degree: 11, Poly: 2879, M: []uint64{1, 1, 7, 9, 9, 53, 27, 3, 421, 241, 2039}},
	{Degree: 11, Poly: 2881, M: []uint64{1, 1, 7, 9, 7, 49, 115, 235, 295, 723, 1199}},
	{Degree: 11, Poly: 2891, M: []uint64{1, 3, 7, 11, 1, 63, 97, 227, 307, 377, 1245}},
	{Degree: 11, Poly: 2905, M: []uint64{1, 3, 7, 7, 5, 43, 83, 125, 333, 419, 1747}},
	{Degree: 11, Poly: 2911, M: []uint64{1, 1, 1, 9, 31, 39, 79, 223, 441, 797, 1901}},
	{Degree: 11, Poly: 2917, M: []uint64{1, 1, 5, 15, 1, 9, 59, 51, 419, 767, 1643}},
	{Degree: 11, Poly: 2927, M: []uint64{1, 1, 7, 15, 25, 57, 87, 47, 175, 743, 1303}},
	{Degree: 11, Poly: 2941, M: []uint64{1, 1, 5, 5, 7, 37, 87, 215, 161, 593, 851}},
	{Degree: 11, Poly: 2951, M: []uint64{1, 3, 3, 1, 7, 45, 11, 211, 11, 5, 1257}},
	{Degree: 11, Poly: 2955, M: []uint64{1, 3, 7, 3, 1, 3, 51, 89, 509, 545, 589}},
	{Degree: 11, Poly: 2963, M: []uint64{1, 3, 1, 5, 11, 13, 7, 51, 77, 349, 2009}},
	{Degree: 11, Poly: 2965, M: []uint64{1, 3, 1, 1, 21, 19, 61, 181, 283, 347, 135}},
	{Degree: 11, Poly: 2991, M: []uint64{1, 1, 1, 11, 13, 57, 99, 11, 55, 451, 1621}},
	{Degree: 11, Poly: 2999, M: []uint64{1, 3, 1, 7, 15, 29, 11, 81, 177, 645, 25}},
	{Degree: 11, Poly: 3005, M: []uint64{1, 3, 7, 9, 31, 9, 63, 199, 227, 847, 1267}},
	{Degree: 11, Poly: 3017, M: []uint64{1, 3, 1, 7, 5, 23, 43, 183, 389, 383, 31}},
	{Degree: 11, Poly: 3035, M: []uint64{1, 3, 5, 3, 21, 49, 85, 207, 67, 253, 1729}},
	{Degree: 11, Poly: 3037, M: []uint64{1, 1, 7, 7, 29, 37, 89, 121, 447, 71, 1143}},
	{Degree: 11, Poly: 3047, M: []uint64{1, 3, 3, 7, 9, 11, 51, 139, 131, 907, 1913}},
	{Degree: 11, Poly: 3053, M: []uint64{1, 1, 5, 11, 13, 51, 97, 107, 305, 975, 837}},
	{Degree: 11, Poly: 3083, M: []uint64{1, 3, 3, 9, 29, 47, 63, 207, 217, 257, 503}},
	{Degree: 11, Poly: 3085, M: []uint64{1, 3, 7, 1, 9, 39, 3, 199, 89, 363, 949}},
	{Degree: 11, Poly: 3097, M: []uint64{1, 1, 1, 3, 23, 39, 49, 33, 319, 181, 927}},
	{Degree: 11, Poly: 3103, M: []uint64{1, 1, 7, 9, 23, 51, 119, 67, 283, 361, 121}},
	{Degree: 11, Poly: 3159, M: []uint64{1, 3, 7, 1, 29, 31, 103, 181, 101, 373, 1193}},
	{Degree: 11, Poly: 3169, M: []uint64{1, 3, 3, 1, 25, 5, 41, 221, 203, 621, 639}},
	{Degree: 11, Poly: 3179, M: []uint64{1, 1, 5, 5, 15, 63, 65, 223, 357, 1, 459}},
	{Degree: 11, Poly: 3187, M: []uint64{1, 1, 1, 7, 7, 5, 81, 107, 353, 177, 1709}},
	{Degree: 11, Poly: 3205, M: []uint64{1, 1, 5, 3, 23, 55, 113, 175, 463, 111, 843}},
	{Degree: 11, Poly: 3209, M: []uint64{1, 1, 7, 7, 3, 33, 45, 83, 241, 533, 1023}},
	{Degree: 11, Poly: 3223, M: []uint64{1, 1, 5, 11, 27, 11, 51, 159, 141, 279, 1993}},
	{Degree: 11, Poly: 3227, M: []uint64{1, 1, 3, 1, 29, 17, 89, 153, 137, 291, 987}},
	{Degree: 11, Poly: 3229, M: []uint64{1, 1, 7, 5, 9, 59, 103, 105, 117, 593, 51}},
	{Degree: 11, Poly: 3251, M: []uint64{1, 3, 3, 1, 3, 35, 77, 101, 113, 633, 1835}},
	{Degree: 11, Poly: 3263, M: []uint64{1, 1, 5, 15, 29, 47, 75, 87, 73, 93, 45}},
	{Degree: 11, Poly: 3271, M: []uint64{1, 3, 1, 11, 17, 13, 125, 223, 501, 389, 1319}},
	{Degree: 11, Poly: 3277, M: []uint64{1, 3, 1, 9, 17, 31, 21, 71, 29, 51, 1619}},
	{Degree: 11, Poly: 3283, M: []uint64{1, 3, 5, 5, 11, 13, 79, 167, 389, 377, 1459}},
	{Degree: 11, Poly: 3285, M: []uint64{1, 1, 5, 5, 23, 33, 61, 29, 43, 219, 1651}},
	{Degree: 11, Poly: 3299, M: []uint64{1, 1, 7, 13, 31, 21, 77, 41, 145, 465, 671}},
	{Degree: 11, Poly: 3305, M: []uint64{1, 3, 7, 3, 3, 57, 123, 97, 223, 763, 11}},
	{Degree: 11, Poly: 3319, M: []uint64{1, 3, 3, 9, 5, 7, 107, 173, 65, 899, 37}},
	{Degree: 11, Poly: 3331, M: []uint64{1, 1, 7, 9, 1, 57, 89, 101, 481, 175, 1325}},
	{Degree: 11, Poly: 3343, M: []uint64{1, 3, 3, 13, 5, 7, 85, 153, 431, 755, 1969}},
	{Degree: 11, Poly: 3357, M: []uint64{1, 3, 5, 1, 13, 29, 115, 43, 151, 761, 1705}},
	{Degree: 11, Poly: 3367, M: []uint64{1, 1, 7, 13, 17, 15, 59, 93, 207, 229, 907}},
	{Degree: 11, Poly: 3373, M: []uint64{1, 1, 3, 9, 31, 29, 117, 115, 115, 165, 1671}},
	{Degree: 11, Poly: 3393, M: []uint64{1, 3, 3, 3, 7, 59, 101, 87, 197, 973, 381}},
	{Degree: 11, Poly: 3399, M: []uint64{1, 3, 1, 13, 15, 7, 95, 21, 15, 437, 1883}},
	{Degree: 11, Poly: 3413, M: []uint64{1, 1, 3, 13, 5, 25, 29, 181, 173, 751, 1399}},
	{Degree: 11, Poly: 3417, M: []uint64{1, 3, 1, 7, 23, 45, 125, 23, 361, 205, 1457}},
	{Degree: 11, Poly: 3427, M: []uint64{1, 1, 1, 7, 17, 45, 49, 229, 21, 901, 465}},
	{Degree: 11, Poly: 3439, M: []uint64{1, 3, 1, 3, 17, 23, 39, 149, 389, 295, 1025}},
	{Degree: 11, Poly: 3441, M: []uint64{1, 3, 1, 1, 21, 19, 125, 247, 33, 73, 305}},
	{Degree: 11, Poly: 3475, M: []uint64{1, 3, 7, 5, 29, 51, 59, 39, 369, 675, 887}},
	{Degree: 11, Poly: 3487, M: []uint64{1, 1, 1, 7, 11, 47, 119, 169, 479, 795, 1449}},
	{Degree: 11, Poly: 3497, M: []uint64{1, 1, 5, 15, 21, 29, 5, 127, 471, 93, 597}},
	{Degree: 11, Poly: 3515, M: []uint64{1, 3, 7, 9, 5, 33, 91, 71, 35, 195, 817}},
	{Degree: 11, Poly: 3517, M: []uint64{1, 1, 5, 9, 15, 19, 19, 155, 349, 743, 1005}},
	{Degree: 11, Poly: 3529, M: []uint64{1, 3, 5, 1, 21, 41, 123, 189, 249, 481, 1431}},
	{Degree: 11, Poly: 3543, M: []uint64{1, 1, 3, 1, 29, 51, 115, 203, 309, 345, 271}},
	{Degree: 11, Poly: 3547, M: []uint64{1, 3, 5, 9, 21, 9, 49, 41, 183, 623, 1447}},
	{Degree: 11, Poly: 3553, M: []uint64{1, 3, 7, 3, 31, 41, 45, 141, 263, 47, 675}},
	{Degree: 11, Poly: 3559, M: []uint64{1, 1, 1, 7, 3, 51, 115, 103, 289, 203, 805}},
	{Degree: 11, Poly: 3573, M: []uint64{1, 1, 3, 1, 5, 9, 87, 69, 5, 385, 1109}},
	{Degree: 11, Poly: 3589, M: []uint64{1, 3, 1, 7, 21, 41, 7, 249, 415, 691, 715}},
	{Degree: 11, Poly: 3613, M: []uint64{1, 3, 1, 3, 21, 63, 103, 131, 475, 27, 105}},
	{Degree: 11, Poly: 3617, M: []uint64{1, 3, 1, 13, 21, 21, 23, 9, 159, 431, 585}},
	{Degree: 11, Poly: 3623, M: []uint64{1, 3, 5, 13, 23, 19, 85, 117, 265, 979, 129}},
	{Degree: 11, Poly: 3627, M: []uint64{1, 3, 5, 11, 17, 17, 65, 5, 487, 205, 1485}},
	{Degree: 11, Poly: 3635, M: []uint64{1, 1, 7, 3, 1, 17, 31, 31, 209, 373, 1061}},
	{Degree: 11, Poly: 3641, M: []uint64{1, 1, 3, 5, 1, 45, 63, 227, 511, 437, 1409}},
	{Degree: 11, Poly: 3655, M: []uint64{1, 3, 3, 11, 1, 13, 3, 33, 411, 719, 245}},
	{Degree: 11, Poly: 3659, M: []uint64{1, 3, 7, 13, 15, 3, 65, 11, 269, 889, 991}},
	{Degree: 11, Poly: 3669, M: []uint64{1, 3, 3, 11, 27, 35, 77, 255, 221, 321, 1955}},
	{Degree: 11, Poly: 3679, M: []uint64{1, 1, 5, 9, 5, 43, 1, 249, 255, 331, 1309}},
	{Degree: 11, Poly: 3697, M: []uint64{1, 1, 1, 7, 23, 5, 113, 93, 445, 287, 1219}},
	{Degree: 11, Poly: 3707, M: []uint64{1, 1, 3, 1, 9, 39, 39, 181, 99, 345, 1903}},
	{Degree: 11, Poly: 3709, M: []uint64{1, 1, 7, 11, 25, 43, 9, 121, 207, 31, 155}},
	{Degree: 11, Poly: 3713, M: []uint64{1, 1, 7, 3, 1, 7, 81, 33, 113, 247, 1997}},
	{Degree: 11, Poly: 3731, M: []uint64{1, 3, 1, 5, 15, 19, 29, 181, 509, 159, 1431}},
	{Degree: 11, Poly: 3743, M: []uint64{1, 1, 1, 9, 11, 1, 67, 137, 71, 89, 805}},
	{Degree: 11, Poly: 3747, M: []uint64{1, 3, 5, 9, 1, 41, 11, 233, 289, 677, 1681}},
	{Degree: 11, Poly: 3771, M: []uint64{1, 3, 7, 11, 27, 49, 39, 199, 395, 839, 585}},
	{Degree: 11, Poly: 3791, M: []uint64{1, 1, 5, 13, 15, 25, 29, 45, 35, 101, 1663}},
	{Degree: 11, Poly: 3805, M: []uint64{1, 3, 5, 15, 1, 61, 121, 175, 389, 481, 1551}},
	{Degree: 11, Poly: 3827, M: []uint64{1, 1, 7, 9, 21, 9, 57, 135, 269, 969, 1425}},
	{Degree: 11, Poly: 3833, M: []uint64{1, 1, 3, 3, 23, 27, 43, 187, 245, 353, 625}},
	{Degree: 11, Poly: 3851, M: []uint64{1, 1, 1, 11, 25, 47, 109, 63, 419, 315, 1031}},
	{Degree: 11, Poly: 3865, M: []uint64{1, 1, 5, 11, 19, 57, 23, 141, 405, 595, 1827}},
	{Degree: 11, Poly: 3889, M: []uint64{1, 3, 7, 5, 9, 1, 33, 187, 501, 487, 1519}},
	{Degree: 11, Poly: 3895, M: []uint64{1, 3, 5, 1, 13, 1, 67, 29, 183, 627, 1125}},
	{Degree: 11, Poly: 3933, M: []uint64{1, 3, 3, 9, 29, 11, 127, 45, 207, 263, 1733}},
	{Degree: 11, Poly: 3947, M: []uint64{1, 3, 1, 15, 25, 47, 11, 151, 417, 883, 1051}},
	{Degree: 11, Poly: 3949, M: []uint64{1, 1, 7, 5, 13, 47, 17, 105, 337, 145, 327}},
	{Degree: 11, Poly: 3957, M: []uint64{1, 3, 7, 13, 31, 3, 27, 237, 473, 893, 1699}},
	{Degree: 11, Poly: 3971, M: []uint64{1, 1, 1, 15, 25, 63, 35, 5, 237, 411, 1645}},
	{Degree: 11, Poly: 3985, M: []uint64{1, 3, 5, 13, 29, 15, 23, 113, 79, 31, 417}},
	{Degree: 11, Poly: 3991, M: []uint64{1, 1, 3, 15, 3, 25, 85, 247, 57, 855, 575}},
	{Degree: 11, Poly: 3995, M: []uint64{1, 1, 3, 11, 21, 25, 1, 95, 281, 537, 355}},
	{Degree: 11, Poly: 4007, M: []uint64{1, 3, 5, 9, 25, 53, 13, 157, 311, 509, 1557}},
	{Degree: 11, Poly: 4013, M: []uint64{1, 3, 5, 7, 9, 7, 53, 191, 475, 1001, 579}},
	{Degree: 11, Poly: 4021, M: []uint64{1, 3, 3, 15, 3, 41, 3, 35, 419, 663, 145}},
	{Degree: 11, Poly: 4045, M: []uint64{1, 1, 7, 9, 13, 27, 117, 207, 455, 417, 833}},
	{Degree: 11, Poly: 4051, M: []uint64{1, 1, 7, 3, 3, 17, 19, 255, 185, 29, 673}},
	{Degree: 11, Poly: 4069, M: []uint64{1, 1, 5, 7, 11, 19, 53, 51, 477, 195, 825}},
	{Degree: 11, Poly: 4073, M: []uint64{1, 1, 7, 7, 17, 57, 109, 79, 59, 273, 171}},
	{Degree: 12, Poly: 4179, M: []uint64{1, 3, 5, 7, 21, 19, 79, 133, 333, 439, 623, 1891}},
	{Degree: 12, Poly: 4201, M: []uint64{1, 1, 5, 13, 9, 37, 57, 47, 203, 951, 609, 1507}},
	{Degree: 12, Poly: 4219, M: []uint64{1, 3, 7, 3, 3, 45, 31, 107, 75, 595, 2007, 2851}},
	{Degree: 12, Poly: 4221, M: []uint64{1, 3, 1, 7, 31, 35, 77, 45, 207, 287, 1927, 2221}},
	{Degree: 12, Poly: 4249, M: []uint64{1, 3, 1, 3, 1, 45, 49, 77, 307, 103, 705, 2729}},
	{Degree: 12, Poly: 4305, M: []uint64{1, 3, 7, 7, 21, 47, 45, 57, 305, 143, 1863, 783}},
	{Degree: 12, Poly: 4331, M: []uint64{1, 1, 7, 15, 3, 5, 11, 49, 423, 271, 1701, 2891}},
	{Degree: 12, Poly: 4359, M: []uint64{1, 3, 3, 11, 11, 11, 85, 3, 491, 621, 611, 2141}},
	{Degree: 12, Poly: 4383, M: []uint64{1, 1, 3, 3, 9, 63, 69, 61, 333, 959, 1007, 1343}},
	{Degree: 12, Poly: 4387, M: []uint64{1, 3, 5, 7, 19, 51, 53, 65, 245, 491, 389, 123}},
	{Degree: 12, Poly: 4411, M: []uint64{1, 1, 7, 7, 15, 11, 43, 79, 271, 63, 1737, 3221}},
	{Degree: 12, Poly: 4431, M: []uint64{1, 3, 1, 3, 13, 29, 63, 31, 251, 149, 1381, 803}},
	{Degree: 12, Poly: 4439, M: []uint64{1, 1, 3, 9, 21, 11, 119, 93, 11, 651, 1687, 3335}},
	{Degree: 12, Poly: 4449, M: []uint64{1, 1, 3, 5, 11, 19, 89, 71, 209, 405, 899, 2713}},
	{Degree: 12, Poly: 4459, M: []uint64{1, 1, 7, 1, 31, 43, 17, 33, 203, 103, 1497, 3369}},
	{Degree: 12, Poly: 4485, M: []uint64{1, 3, 3, 15, 31, 17, 67, 155, 55, 955, 675, 3567}},
	{Degree: 12, Poly: 4531, M: []uint64{1, 3, 1, 3, 17, 29, 61, 101, 469, 485, 2017, 411}},
	{Degree: 12, Poly: 4569, M: []uint64{1, 3, 5, 13, 25, 11, 59, 173, 437, 625, 19, 2461}},
	{Degree: 12, Poly: 4575, M: []uint64{1, 1, 1, 15, 27, 53, 77, 235, 149, 687, 875, 681}},
	{Degree: 12, Poly: 4621, M: []uint64{1, 3, 7, 1, 19, 43, 23, 139, 191, 905, 1669, 1981}},
	{Degree: 12, Poly: 4663, M: []uint64{1, 1, 1, 13, 11, 49, 69, 171, 155, 743, 685, 1837}},
	{Degree: 12, Poly: 4669, M: []uint64{1, 3, 5, 15, 21, 25, 41, 201, 9, 1, 719, 849}},
	{Degree: 12, Poly: 4711, M: []uint64{1, 3, 5, 11, 7, 49, 35, 129, 427, 155, 1357, 3639}},
	{Degree: 12, Poly: 4723, M: []uint64{1, 3, 5, 9, 25, 7, 127, 253, 373, 37, 233, 975}},
	{Degree: 12, Poly: 4735, M: []uint64{1, 3, 5, 5, 29, 5, 83, 247, 141, 15, 1111, 1183}},
}
