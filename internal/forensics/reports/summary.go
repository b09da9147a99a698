package reports

import (
	"slices"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

// Summary condenses the reports of an address.
type Summary struct {
	Count      int      `json:"count"`
	Trusted    int      `json:"trusted"`
	Untrusted  int      `json:"untrusted"`
	Categories []string `json:"categories"`
	Domains    []string `json:"domains"`
}

func Summarize(reports []model.Report) Summary {
	s := Summary{Count: len(reports), Categories: []string{}, Domains: []string{}}
	for _, r := range reports {
		if r.Trusted {
			s.Trusted++
		} else {
			s.Untrusted++
		}
		if c := model.NormalizeCategory(r.Category); c != "" {
			s.Categories = append(s.Categories, c)
		}
		for _, d := range r.Domains {
			if d != "" {
				s.Domains = append(s.Domains, d)
			}
		}
	}
	slices.Sort(s.Categories)
	s.Categories = slices.Compact(s.Categories)
	slices.Sort(s.Domains)
	s.Domains = slices.Compact(s.Domains)
	return s
}

// Categories returns the normalized category of every report, duplicates kept.
func Categories(reports []model.Report) []string {
	out := make([]string, 0, len(reports))
	for _, r := range reports {
		out = append(out, model.NormalizeCategory(r.Category))
	}
	return out
}
