// Package elements holds the periodic table layout used by the element picker.
package elements

import "slices"

// Grid dimensions of the periodic table layout. Rows 7 and 8 hold the
// lanthanides and actinides.
const (
	GridRows = 9
	GridCols = 18
)

// Element is one cell of the periodic table.
type Element struct {
	Z      int    `json:"z"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

var table = []Element{
	{Z: 1, Symbol: "H", Name: "Hydrogen", Row: 0, Col: 0},
	{Z: 2, Symbol: "He", Name: "Helium", Row: 0, Col: 17},
	{Z: 3, Symbol: "Li", Name: "Lithium", Row: 1, Col: 0},
	{Z: 4, Symbol: "Be", Name: "Beryllium", Row: 1, Col: 1},
	{Z: 5, Symbol: "B", Name: "Boron", Row: 1, Col: 12},
	{Z: 6, Symbol: "C", Name: "Carbon", Row: 1, Col: 13},
	{Z: 7, Symbol: "N", Name: "Nitrogen", Row: 1, Col: 14},
	{Z: 8, Symbol: "O", Name: "Oxygen", Row: 1, Col: 15},
	{Z: 9, Symbol: "F", Name: "Fluorine", Row: 1, Col: 16},
	{Z: 10, Symbol: "Ne", Name: "Neon", Row: 1, Col: 17},
	{Z: 11, Symbol: "Na", Name: "Sodium", Row: 2, Col: 0},
	{Z: 12, Symbol: "Mg", Name: "Magnesium", Row: 2, Col: 1},
	{Z: 13, Symbol: "Al", Name: "Aluminium", Row: 2, Col: 12},
	{Z: 14, Symbol: "Si", Name: "Silicon", Row: 2, Col: 13},
	{Z: 15, Symbol: "P", Name: "Phosphorus", Row: 2, Col: 14},
	{Z: 16, Symbol: "S", Name: "Sulfur", Row: 2, Col: 15},
	{Z: 17, Symbol: "Cl", Name: "Chlorine", Row: 2, Col: 16},
	{Z: 18, Symbol: "Ar", Name: "Argon", Row: 2, Col: 17},
	{Z: 19, Symbol: "K", Name: "Potassium", Row: 3, Col: 0},
	{Z: 20, Symbol: "Ca", Name: "Calcium", Row: 3, Col: 1},
	{Z: 21, Symbol: "Sc", Name: "Scandium", Row: 3, Col: 2},
	{Z: 22, Symbol: "Ti", Name: "Titanium", Row: 3, Col: 3},
	{Z: 23, Symbol: "V", Name: "Vanadium", Row: 3, Col: 4},
	{Z: 24, Symbol: "Cr", Name: "Chromium", Row: 3, Col: 5},
	{Z: 25, Symbol: "Mn", Name: "Manganese", Row: 3, Col: 6},
	{Z: 26, Symbol: "Fe", Name: "Iron", Row: 3, Col: 7},
	{Z: 27, Symbol: "Co", Name: "Cobalt", Row: 3, Col: 8},
	{Z: 28, Symbol: "Ni", Name: "Nickel", Row: 3, Col: 9},
	{Z: 29, Symbol: "Cu", Name: "Copper", Row: 3, Col: 10},
	{Z: 30, Symbol: "Zn", Name: "Zinc", Row: 3, Col: 11},
	{Z: 31, Symbol: "Ga", Name: "Gallium", Row: 3, Col: 12},
	{Z: 32, Symbol: "Ge", Name: "Germanium", Row: 3, Col: 13},
	{Z: 33, Symbol: "As", Name: "Arsenic", Row: 3, Col: 14},
	{Z: 34, Symbol: "Se", Name: "Selenium", Row: 3, Col: 15},
	{Z: 35, Symbol: "Br", Name: "Bromine", Row: 3, Col: 16},
	{Z: 36, Symbol: "Kr", Name: "Krypton", Row: 3, Col: 17},
	{Z: 37, Symbol: "Rb", Name: "Rubidium", Row: 4, Col: 0},
	{Z: 38, Symbol: "Sr", Name: "Strontium", Row: 4, Col: 1},
	{Z: 39, Symbol: "Y", Name: "Yttrium", Row: 4, Col: 2},
	{Z: 40, Symbol: "Zr", Name: "Zirconium", Row: 4, Col: 3},
	{Z: 41, Symbol: "Nb", Name: "Niobium", Row: 4, Col: 4},
	{Z: 42, Symbol: "Mo", Name: "Molybdenum", Row: 4, Col: 5},
	{Z: 43, Symbol: "Tc", Name: "Technetium", Row: 4, Col: 6},
	{Z: 44, Symbol: "Ru", Name: "Ruthenium", Row: 4, Col: 7},
	{Z: 45, Symbol: "Rh", Name: "Rhodium", Row: 4, Col: 8},
	{Z: 46, Symbol: "Pd", Name: "Palladium", Row: 4, Col: 9},
	{Z: 47, Symbol: "Ag", Name: "Silver", Row: 4, Col: 10},
	{Z: 48, Symbol: "Cd", Name: "Cadmium", Row: 4, Col: 11},
	{Z: 49, Symbol: "In", Name: "Indium", Row: 4, Col: 12},
	{Z: 50, Symbol: "Sn", Name: "Tin", Row: 4, Col: 13},
	{Z: 51, Symbol: "Sb", Name: "Antimony", Row: 4, Col: 14},
	{Z: 52, Symbol: "Te", Name: "Tellurium", Row: 4, Col: 15},
	{Z: 53, Symbol: "I", Name: "Iodine", Row: 4, Col: 16},
	{Z: 54, Symbol: "Xe", Name: "Xenon", Row: 4, Col: 17},
	{Z: 55, Symbol: "Cs", Name: "Caesium", Row: 5, Col: 0},
	{Z: 56, Symbol: "Ba", Name: "Barium", Row: 5, Col: 1},
	{Z: 57, Symbol: "La", Name: "Lanthanum", Row: 5, Col: 2},
	{Z: 58, Symbol: "Ce", Name: "Cerium", Row: 7, Col: 3},
	{Z: 59, Symbol: "Pr", Name: "Praseodymium", Row: 7, Col: 4},
	{Z: 60, Symbol: "Nd", Name: "Neodymium", Row: 7, Col: 5},
	{Z: 61, Symbol: "Pm", Name: "Promethium", Row: 7, Col: 6},
	{Z: 62, Symbol: "Sm", Name: "Samarium", Row: 7, Col: 7},
	{Z: 63, Symbol: "Eu", Name: "Europium", Row: 7, Col: 8},
	{Z: 64, Symbol: "Gd", Name: "Gadolinium", Row: 7, Col: 9},
	{Z: 65, Symbol: "Tb", Name: "Terbium", Row: 7, Col: 10},
	{Z: 66, Symbol: "Dy", Name: "Dysprosium", Row: 7, Col: 11},
	{Z: 67, Symbol: "Ho", Name: "Holmium", Row: 7, Col: 12},
	{Z: 68, Symbol: "Er", Name: "Erbium", Row: 7, Col: 13},
	{Z: 69, Symbol: "Tm", Name: "Thulium", Row: 7, Col: 14},
	{Z: 70, Symbol: "Yb", Name: "Ytterbium", Row: 7, Col: 15},
	{Z: 71, Symbol: "Lu", Name: "Lutetium", Row: 7, Col: 16},
	{Z: 72, Symbol: "Hf", Name: "Hafnium", Row: 5, Col: 3},
	{Z: 73, Symbol: "Ta", Name: "Tantalum", Row: 5, Col: 4},
	{Z: 74, Symbol: "W", Name: "Tungsten", Row: 5, Col: 5},
	{Z: 75, Symbol: "Re", Name: "Rhenium", Row: 5, Col: 6},
	{Z: 76, Symbol: "Os", Name: "Osmium", Row: 5, Col: 7},
	{Z: 77, Symbol: "Ir", Name: "Iridium", Row: 5, Col: 8},
	{Z: 78, Symbol: "Pt", Name: "Platinum", Row: 5, Col: 9},
	{Z: 79, Symbol: "Au", Name: "Gold", Row: 5, Col: 10},
	{Z: 80, Symbol: "Hg", Name: "Mercury", Row: 5, Col: 11},
	{Z: 81, Symbol: "Tl", Name: "Thallium", Row: 5, Col: 12},
	{Z: 82, Symbol: "Pb", Name: "Lead", Row: 5, Col: 13},
	{Z: 83, Symbol: "Bi", Name: "Bismuth", Row: 5, Col: 14},
	{Z: 84, Symbol: "Po", Name: "Polonium", Row: 5, Col: 15},
	{Z: 85, Symbol: "At", Name: "Astatine", Row: 5, Col: 16},
	{Z: 86, Symbol: "Rn", Name: "Radon", Row: 5, Col: 17},
	{Z: 87, Symbol: "Fr", Name: "Francium", Row: 6, Col: 0},
	{Z: 88, Symbol: "Ra", Name: "Radium", Row: 6, Col: 1},
	{Z: 89, Symbol: "Ac", Name: "Actinium", Row: 6, Col: 2},
	{Z: 90, Symbol: "Th", Name: "Thorium", Row: 8, Col: 3},
	{Z: 91, Symbol: "Pa", Name: "Protactinium", Row: 8, Col: 4},
	{Z: 92, Symbol: "U", Name: "Uranium", Row: 8, Col: 5},
	{Z: 93, Symbol: "Np", Name: "Neptunium", Row: 8, Col: 6},
	{Z: 94, Symbol: "Pu", Name: "Plutonium", Row: 8, Col: 7},
	{Z: 95, Symbol: "Am", Name: "Americium", Row: 8, Col: 8},
	{Z: 96, Symbol: "Cm", Name: "Curium", Row: 8, Col: 9},
	{Z: 97, Symbol: "Bk", Name: "Berkelium", Row: 8, Col: 10},
	{Z: 98, Symbol: "Cf", Name: "Californium", Row: 8, Col: 11},
	{Z: 99, Symbol: "Es", Name: "Einsteinium", Row: 8, Col: 12},
	{Z: 100, Symbol: "Fm", Name: "Fermium", Row: 8, Col: 13},
	{Z: 101, Symbol: "Md", Name: "Mendelevium", Row: 8, Col: 14},
	{Z: 102, Symbol: "No", Name: "Nobelium", Row: 8, Col: 15},
	{Z: 103, Symbol: "Lr", Name: "Lawrencium", Row: 8, Col: 16},
	{Z: 104, Symbol: "Rf", Name: "Rutherfordium", Row: 6, Col: 3},
	{Z: 105, Symbol: "Db", Name: "Dubnium", Row: 6, Col: 4},
	{Z: 106, Symbol: "Sg", Name: "Seaborgium", Row: 6, Col: 5},
	{Z: 107, Symbol: "Bh", Name: "Bohrium", Row: 6, Col: 6},
	{Z: 108, Symbol: "Hs", Name: "Hassium", Row: 6, Col: 7},
	{Z: 109, Symbol: "Mt", Name: "Meitnerium", Row: 6, Col: 8},
	{Z: 110, Symbol: "Ds", Name: "Darmstadtium", Row: 6, Col: 9},
	{Z: 111, Symbol: "Rg", Name: "Roentgenium", Row: 6, Col: 10},
	{Z: 112, Symbol: "Cn", Name: "Copernicium", Row: 6, Col: 11},
	{Z: 113, Symbol: "Nh", Name: "Nihonium", Row: 6, Col: 12},
	{Z: 114, Symbol: "Fl", Name: "Flerovium", Row: 6, Col: 13},
	{Z: 115, Symbol: "Mc", Name: "Moscovium", Row: 6, Col: 14},
	{Z: 116, Symbol: "Lv", Name: "Livermorium", Row: 6, Col: 15},
	{Z: 117, Symbol: "Ts", Name: "Tennessine", Row: 6, Col: 16},
	{Z: 118, Symbol: "Og", Name: "Oganesson", Row: 6, Col: 17},
}

var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(table))
	for _, e := range table {
		m[e.Symbol] = e
	}
	return m
}()

// All returns every element ordered by atomic number.
func All() []Element {
	return slices.Clone(table)
}

// Lookup finds an element by its case-sensitive symbol.
func Lookup(symbol string) (Element, bool) {
	e, ok := bySymbol[symbol]
	return e, ok
}
