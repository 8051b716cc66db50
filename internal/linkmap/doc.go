// Package linkmap keeps the quiz navigation map embedded in a host HTML page
// in sync with the quiz pages that exist.
//
// The map is a JavaScript object literal such as
//
//	const quizLinkMap = {
//	    '1. Matter in Our Surroundings': './science/chemistry/matter_quiz.html',
//	};
//
// It is located either by a pair of sentinel comment lines or by its own
// declaration and closing "};". Parsing is deliberately tolerant: entries are
// split on commas and then on the first colon, so labels containing either
// character do not survive a rewrite. Everything outside the located region is
// preserved byte for byte.
package linkmap
