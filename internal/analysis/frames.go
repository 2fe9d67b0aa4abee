package analysis

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

const (
	colKey   = "Key"
	colValue = "Value"
)

type keyedValue struct {
	Key   int
	Value int
}

// grouping holds one value per input row under an integer key. gota reads
// labels such as "NA" or "NaN" as missing and joins multi-column keys with
// "_", so labels stay on this side and only their keys reach the dataframe.
type grouping struct {
	rows   []keyedValue
	labels map[int]string
}

// byLabel numbers the distinct labels in ascending order, so sorting on the
// key doubles as the label tie break.
func byLabel(labels []string, values []int) grouping {
	distinct := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		distinct = append(distinct, l)
	}
	sort.Strings(distinct)

	g := grouping{
		rows:   make([]keyedValue, len(labels)),
		labels: make(map[int]string, len(distinct)),
	}
	ids := make(map[string]int, len(distinct))
	for i, l := range distinct {
		ids[l] = i
		g.labels[i] = l
	}
	for i, l := range labels {
		g.rows[i] = keyedValue{Key: ids[l], Value: values[i]}
	}
	return g
}

// byYear keys rows by the year itself.
func byYear(years, values []int) grouping {
	g := grouping{
		rows:   make([]keyedValue, len(years)),
		labels: make(map[int]string),
	}
	for i, y := range years {
		g.rows[i] = keyedValue{Key: y, Value: values[i]}
		g.labels[y] = strconv.Itoa(y)
	}
	return g
}

func (g grouping) count() (dataframe.DataFrame, error) {
	return g.aggregate(dataframe.Aggregation_COUNT)
}

func (g grouping) sum() (dataframe.DataFrame, error) {
	return g.aggregate(dataframe.Aggregation_SUM)
}

func (g grouping) aggregate(typ dataframe.AggregationType) (dataframe.DataFrame, error) {
	df := dataframe.LoadStructs(g.rows)
	if df.Err != nil {
		return df, fmt.Errorf("load groups: %w", df.Err)
	}
	out := df.GroupBy(colKey).Aggregation([]dataframe.AggregationType{typ}, []string{colValue})
	if out.Err != nil {
		return out, fmt.Errorf("aggregate %s: %w", typ, out.Err)
	}
	// Aggregated columns are suffixed with the aggregation name; rename to a stable column.
	for _, name := range out.Names() {
		if name != colKey {
			out = out.Rename(colValue, name)
			break
		}
	}
	return out, out.Err
}

// rows reads an aggregated frame back into labelled rows.
func (g grouping) toRows(df dataframe.DataFrame) ([]Row, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	keys, err := df.Col(colKey).Int()
	if err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	values := df.Col(colValue).Float()
	if len(keys) != len(values) {
		return nil, fmt.Errorf("column length mismatch: %d keys, %d values", len(keys), len(values))
	}
	rows := make([]Row, len(keys))
	for i, k := range keys {
		label, ok := g.labels[k]
		if !ok {
			return nil, fmt.Errorf("unknown group key %d", k)
		}
		rows[i] = Row{Label: label, Value: values[i]}
	}
	return rows, nil
}

// sortDesc orders by Value descending with the key ascending as the tie break.
func sortDesc(df dataframe.DataFrame) dataframe.DataFrame {
	return df.Arrange(dataframe.RevSort(colValue), dataframe.Sort(colKey))
}

func sortByKey(df dataframe.DataFrame) dataframe.DataFrame {
	return df.Arrange(dataframe.Sort(colKey))
}
