// Package autoformat turns manually typed ordered-list lines into list
// items as the user types.
//
// An Engine reacts to every edit notification of a Document:
//
//  1. Locate the paragraph containing the edit.
//  2. Classify it: does it start with a numeral followed by ". "?
//  3. If so, rewrite "12. text" as "\t12\ttext" and attach a decimal
//     TextList starting at 12 to the paragraph and the typing style.
//  4. Correct list paragraphs whose first tab stop lies left of the default
//     layout by resetting their tab stops to the default.
//
// The rewrite in step 3 triggers a nested notification that is handled
// inline. It terminates because rewritten text starts with a TAB and
// classification requires a leading digit.
package autoformat
