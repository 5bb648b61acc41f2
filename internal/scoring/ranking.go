package scoring

import "sort"

// SubjectRank is one user's standing within a single subject. HasData is
// false when the user has no records in that subject; a synthetic rank of 0
// or N+1 is never reported.
type SubjectRank struct {
	Subject      string
	Position     int // 1-based
	Participants int
	SuccessRate  int // the user's own pooled rate in the subject
	HasData      bool
}

// Rankings ranks userID against every user present in the school-wide
// result set, per subject. Within a subject each user's counts are pooled
// into one triple, the pooled rates are sorted descending, and ties keep
// their first-encounter order (stable sort, no secondary key). Subjects come
// back in first-encounter order of the input.
func Rankings(all []Result, userID string, penalty float64) []SubjectRank {
	subjects := Aggregate(all, BySubject, penalty)

	ranks := make([]SubjectRank, 0, len(subjects))
	for _, subject := range subjects {
		var inSubject []Result
		for _, r := range all {
			if r.Subject == subject.Key {
				inSubject = append(inSubject, r)
			}
		}

		users := Aggregate(inSubject, ByUser, penalty)
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].SuccessRate > users[j].SuccessRate
		})

		rank := SubjectRank{Subject: subject.Key, Participants: len(users)}
		for i, u := range users {
			if u.Key == userID {
				rank.Position = i + 1
				rank.SuccessRate = u.SuccessRate
				rank.HasData = true
				break
			}
		}
		ranks = append(ranks, rank)
	}
	return ranks
}
