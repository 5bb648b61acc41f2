package scoring

// Bucket is one group of pooled counts sharing an aggregation key, with the
// success rate computed over the pooled triple. Pooling first and computing
// once weighs each question equally; averaging per-record rates would let a
// one-question test count as much as a hundred-question one.
type Bucket struct {
	Key         string
	Records     int
	Correct     int
	Wrong       int
	Blank       int
	Total       int
	Net         float64
	SuccessRate int
}

// KeyFunc extracts the grouping key from a result (subject, calendar day,
// user id, ...).
type KeyFunc func(Result) string

// Aggregate groups results by key and sums their counts into one bucket per
// distinct key. Buckets come back in first-encounter order; accumulation is
// commutative, so reordering the input only permutes the buckets, never
// changes their sums. Empty input yields an empty slice.
func Aggregate(results []Result, key KeyFunc, penalty float64) []Bucket {
	index := make(map[string]int, len(results))
	buckets := make([]Bucket, 0, len(results))

	for _, r := range results {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k})
		}
		buckets[i].Records++
		buckets[i].Correct += r.Correct
		buckets[i].Wrong += r.Wrong
		buckets[i].Blank += r.Blank
	}

	for i := range buckets {
		s := Calculate(buckets[i].Correct, buckets[i].Wrong, buckets[i].Blank, penalty)
		buckets[i].Total = s.Total
		buckets[i].Net = s.Net
		buckets[i].SuccessRate = s.SuccessRate
	}
	return buckets
}

// BySubject keys a result by its subject name.
func BySubject(r Result) string { return r.Subject }

// ByDay keys a result by the local calendar day it was created on.
func ByDay(r Result) string { return r.CreatedAt.Local().Format("2006-01-02") }

// ByUser keys a result by its owning user id.
func ByUser(r Result) string { return r.UserID }
