package fe

// VerticesPerCell returns the number of vertices bounding a cell of dim.
func VerticesPerCell(dim int) int {
	return 1 << dim
}

// LinesPerCell returns the number of lines bounding a cell of dim. In 1d the
// cell is itself a line and has no bounding lines.
func LinesPerCell(dim int) int {
	if dim == 2 {
		return 4
	}
	return 0
}

// LineDofs returns the gathered length for a single line: both vertices then
// the line interior.
func LineDofs(dofsPerVertex, dofsPerLine int) int {
	return 2*dofsPerVertex + dofsPerLine
}

// QuadDofs returns the gathered length for a single quad: four vertices, four
// lines, then the quad interior.
func QuadDofs(dofsPerVertex, dofsPerLine, dofsPerQuad int) int {
	return 4*dofsPerVertex + 4*dofsPerLine + dofsPerQuad
}

// CellDofs returns the gathered length for a cell of dim.
func CellDofs(dim, dofsPerVertex, dofsPerLine, dofsPerQuad int) int {
	if dim == 1 {
		return LineDofs(dofsPerVertex, dofsPerLine)
	}
	return QuadDofs(dofsPerVertex, dofsPerLine, dofsPerQuad)
}
