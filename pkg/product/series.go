package product

// Point is one entry of a historical time series.
type Point struct {
	Timestamp float64
	Value     float64
}

// TimeSeries is an ordered sequence of timestamp/value points, oldest
// first, parsed from the raw record's flat alternating arrays.
type TimeSeries []Point

// ParseSeries converts a flat [t0, v0, t1, v1, ...] array into an
// explicit TimeSeries. A trailing timestamp without a value is dropped.
func ParseSeries(flat []float64) TimeSeries {
	if len(flat) < 2 {
		return nil
	}
	ts := make(TimeSeries, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		ts = append(ts, Point{Timestamp: flat[i], Value: flat[i+1]})
	}
	return ts
}

// LastValid scans the series from the end and returns the value of the
// most recent point for which valid returns true. The second return is
// false when no point qualifies.
func (ts TimeSeries) LastValid(valid func(float64) bool) (float64, bool) {
	for i := len(ts) - 1; i >= 0; i-- {
		if valid(ts[i].Value) {
			return ts[i].Value, true
		}
	}
	return 0, false
}
