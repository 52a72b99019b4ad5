// Package domain contains the value types shared by every part of the chart
// engine: the birth input, gender, and the sentinel errors raised when input
// is rejected. The calculation rules themselves live in the subpackages
// (kanshi, solarterm, stars, chart, fortune).
package domain
