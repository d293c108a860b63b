// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"io"

	"github.com/google/safehtml/template"
)

const htmlText = `
<table class='bmperf'>
<tbody>
<tr><th>Total benchmark runs<td>{{.Count}}
<tr><th>Array sizes tested<td>{{.Sizes}}
<tr><th>Correlation coefficient<td>{{.Correlation}}
</tbody>
</table>
<table class='bmperf'>
<tbody>
<tr><th>ArraySize<th>N<th>mean<th>std<th>min<th>max
{{range .BySize -}}
<tr><td>{{index . 0}}{{range slice . 1}}<td class='num'>{{.}}{{end}}
{{end -}}
</tbody>
</table>
<table class='bmperf'>
<tbody>
<tr><th>InputType<th>N<th>mean<th>std
{{range .ByType -}}
<tr><td>{{index . 0}}{{range slice . 1}}<td class='num'>{{.}}{{end}}
{{end -}}
</tbody>
</table>
<table class='bmperf'>
<tbody>
<tr><th>ArraySize<th>time/element
{{range .Efficiency -}}
<tr><td>{{index . 0}}<td class='num'>{{index . 1}}
{{end -}}
</tbody>
</table>
{{- range .Warnings}}
<p class='warning'>{{.}}
{{- end}}
`

var htmlTemplate = template.Must(template.New("summary").Parse(htmlText))

// htmlSummary is s with every value already formatted for display.
type htmlSummary struct {
	Count       int
	Sizes       string
	Correlation string
	BySize      [][]string
	ByType      [][]string
	Efficiency  [][]string
	Warnings    []string
}

// FormatHTML writes an HTML rendering of s to w.
//
// Durations in each column are scaled to a common unit chosen from the
// largest value in that column.
func FormatHTML(w io.Writer, s *Summary) error {
	h := &htmlSummary{
		Count:       s.Count,
		Sizes:       fmt.Sprint(s.Sizes),
		Correlation: fmt.Sprintf("%.4f", s.Correlation),
	}

	var means, sds, mins, maxs []float64
	for _, st := range s.BySize {
		means = append(means, st.Mean)
		sds = append(sds, st.StdDev)
		mins = append(mins, st.Min)
		maxs = append(maxs, st.Max)
	}
	meanS, sdS, minS, maxS := columnScaler(means), columnScaler(sds), columnScaler(mins), columnScaler(maxs)
	for _, st := range s.BySize {
		h.BySize = append(h.BySize, []string{
			fmt.Sprint(st.ArraySize), fmt.Sprint(st.N),
			meanS(st.Mean), sdS(st.StdDev), minS(st.Min), maxS(st.Max),
		})
	}

	means, sds = means[:0], sds[:0]
	for _, st := range s.ByType {
		means = append(means, st.Mean)
		sds = append(sds, st.StdDev)
	}
	meanS, sdS = columnScaler(means), columnScaler(sds)
	for _, st := range s.ByType {
		h.ByType = append(h.ByType, []string{
			st.InputType, fmt.Sprint(st.N), meanS(st.Mean), sdS(st.StdDev),
		})
	}

	var tpes []float64
	for _, e := range s.Efficiency {
		tpes = append(tpes, e.MeanTimePerElement)
	}
	tpeS := columnScaler(tpes)
	for _, e := range s.Efficiency {
		h.Efficiency = append(h.Efficiency, []string{fmt.Sprint(e.ArraySize), tpeS(e.MeanTimePerElement)})
	}

	for _, warn := range s.Warnings {
		h.Warnings = append(h.Warnings, "warning: "+warn.Error())
	}
	return htmlTemplate.Execute(w, h)
}
