// Package codec reads and writes the board's line-oriented text format and
// its JSONL interchange form.
//
// Text format, one record per line:
//
//	img/food/plate.png food
//	>img/food/fries.png french fries
//
// A line starting with '>' declares an item of the most recent category;
// any other line declares a category. Each line is split once, on the first
// space: the left side is the symbol, the rest of the line is the text.
package codec
