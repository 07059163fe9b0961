/*
Package glyph holds the data model of the editor: the shapes a letter is
drawn with and the store that keeps the committed shapes of all 26 letters.

A Shape is one of four primitives:

	Dot      1 point, drawn as a small filled circle
	Line     2 points
	Curve    3 or more points, drawn smoothed
	Polygon  3 or more points, closed and filled

Shapes cannot be changed once built. Editing happens in package stroke
before shapes are committed to a Store.
*/
package glyph
