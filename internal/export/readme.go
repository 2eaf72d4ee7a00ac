package export

import "strings"

// readmeText explains each bundle member. Stored with LF so gofmt leaves it
// alone; normalized to CRLF on the way out.
const readmeText = `# Comparison results

This bundle was produced by comparing two line-oriented text files. The
first line of each file is treated as a header and is never compared; blank
lines are ignored; leading and trailing whitespace is stripped before lines
are matched.

Each CSV has the columns 行番号 (line number in the source file, counting the
header as line 1) and データ (the line content).

- only_in_<A>.csv: every occurrence of each line that appears only in the
  first file.
- only_in_<B>.csv: every occurrence of each line that appears only in the
  second file.
- in_both.csv: one row per line shared by both files, at its first position
  in the first file.
- duplicates_in_<A>.csv: every occurrence of each line that appears more
  than once within the first file.
- duplicates_in_<B>.csv: every occurrence of each line that appears more
  than once within the second file.
`

// Readme returns the bundle README with CRLF line endings.
func Readme() string {
	return strings.ReplaceAll(strings.ReplaceAll(readmeText, "\r\n", "\n"), "\n", "\r\n")
}
