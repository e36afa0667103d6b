package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// parseIndices reads a comma separated list of card indices.
func parseIndices(list string) ([]int, error) {
	var indices []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		i, err := strconv.Atoi(field)
		if err != nil {
			return nil, configError("cardshow.expand", fmt.Errorf("invalid card index %q", field))
		}
		indices = append(indices, i)
	}
	return indices, nil
}

func writeRow(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func formatSize(width, height float64) string {
	if height < 0 {
		return formatFloat(width) + "xdynamic"
	}
	return formatFloat(width) + "x" + formatFloat(height)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
