package service

import "github.com/vladislavprovich/drivehub/pkg/client/catalogue"

type ConvectorToClient struct{}

func NewConvectorToClient() *ConvectorToClient {
	return &ConvectorToClient{}
}

func (c *ConvectorToClient) ConvertToGetInstructorByIDRequest(
	req *GetInstructorByIDRequest,
) *catalogue.GetInstructorByIDRequest {
	return &catalogue.GetInstructorByIDRequest{
		ID: req.ID,
	}
}

func (c *ConvectorToClient) ConvertToListInstructorsRequest(
	req *ListInstructorsRequest,
) *catalogue.ListInstructorsRequest {
	return &catalogue.ListInstructorsRequest{
		City:         req.City,
		Transmission: req.Transmission,
		Page:         req.Page,
		Limit:        req.Limit,
	}
}
