package survey

// Normalize flattens a user's raw answers into a UserAnswerSet.
//
// Answers without a question reference are discarded. The upstream answer
// feed may contain more than one record for the same question; the first
// record in feed order is kept and later ones are ignored, whatever their
// values.
func Normalize(raw RawUserAnswers) UserAnswerSet {
	set := UserAnswerSet{
		Username:  raw.Username,
		Email:     raw.Email,
		UpdatedAt: raw.UpdatedAt,
		Answers:   []Answer{},
	}

	seen := map[string]bool{}

	for _, a := range raw.Answers {
		if a.Question == nil || a.Question.ID == "" {
			continue
		}

		id := a.Question.ID
		if seen[id] {
			continue
		}

		seen[id] = true

		answer := Answer{
			QuestionID: id,
			Topic:      a.Question.Topic,
			Category:   a.Question.Category,
			UpdatedAt:  a.UpdatedAt,
		}

		if a.CustomScaleValue != nil {
			answer.Kind = CustomScale{Value: *a.CustomScaleValue}
		} else {
			answer.Kind = Scored{Knowledge: a.Knowledge, Motivation: a.Motivation}
		}

		set.Answers = append(set.Answers, answer)
	}

	return set
}

// NormalizeAll normalizes every user's answers, preserving order.
func NormalizeAll(raw []RawUserAnswers) []UserAnswerSet {
	list := make([]UserAnswerSet, 0, len(raw))
	for _, r := range raw {
		list = append(list, Normalize(r))
	}

	return list
}

// Date returns the date part (YYYY-MM-DD) of the answer set's update
// timestamp, or an empty string if there is no timestamp.
func (s UserAnswerSet) Date() string {
	if len(s.UpdatedAt) > 10 {
		return s.UpdatedAt[:10]
	}

	return s.UpdatedAt
}
