package service

import "github.com/vladislavprovich/drivehub/pkg/client/catalogue"

type ConvectorFromClient struct{}

func NewConvectorFromClient() *ConvectorFromClient {
	return &ConvectorFromClient{}
}

func (c *ConvectorFromClient) ConvertFromGetInstructorByIDResponse(
	resp *catalogue.GetInstructorByIDResponse,
) *Instructor {
	instructor := toServiceInstructor(resp.Instructor)
	return &instructor
}

func (c *ConvectorFromClient) ConvertFromListInstructorsResponse(
	resp *catalogue.ListInstructorsResponse,
) *InstructorList {
	return &InstructorList{
		Instructors: toServiceInstructors(resp.Instructors),
		Total:       resp.Total,
		Page:        resp.Page,
	}
}

func toServiceInstructor(i catalogue.Instructor) Instructor {
	return Instructor{
		ID:           i.ID,
		Name:         i.Name,
		City:         i.City,
		Postcode:     i.Postcode,
		Transmission: i.Transmission,
		HourlyRate:   i.HourlyRate,
		Rating:       i.Rating,
		ReviewCount:  i.ReviewCount,
		Languages:    i.Languages,
		Bio:          i.Bio,
		Verified:     i.Verified,
		JoinedAt:     i.JoinedAt,
	}
}

func toServiceInstructors(instructors []catalogue.Instructor) []Instructor {
	result := make([]Instructor, len(instructors))
	for i, ins := range instructors {
		result[i] = toServiceInstructor(ins)
	}
	return result
}
