// Package quiz generates new quiz pages from an existing quiz page used as a
// template. It powers the "quizgen create" and "quizgen batch" commands: the
// template's title, headings, and backend table name are swapped for the new
// chapter's values, and the resulting page's link is handed to the linkmap
// package.
package quiz
