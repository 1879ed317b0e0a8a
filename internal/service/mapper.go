package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: model.TimeOfDay(""),
			DstType: "",
			Fn: func(src interface{}) (interface{}, error) {
				return src.(model.TimeOfDay).Short(), nil
			},
		},
	},
}

// toResponse copies matching fields of a model into a response DTO.
func toResponse[R any](from any) (R, error) {
	var resp R
	err := copier.CopyWithOption(&resp, from, copyOption)
	return resp, err
}

func toResponses[R, M any](rows []M) ([]R, error) {
	out := make([]R, 0, len(rows))
	for i := range rows {
		resp, err := toResponse[R](&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func quizSummary(q *model.Quiz, today model.Date) (dto.QuizSummaryResponse, error) {
	resp, err := toResponse[dto.QuizSummaryResponse](q)
	resp.DaysUntil = q.QuizDate.DaysUntil(today)
	return resp, err
}

func examResponse(e *model.Exam, today model.Date) (dto.ExamResponse, error) {
	resp, err := toResponse[dto.ExamResponse](e)
	resp.DaysUntil = e.ExamDate.DaysUntil(today)
	return resp, err
}

func respond[R any](from any) (*R, error) {
	resp, err := toResponse[R](from)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
