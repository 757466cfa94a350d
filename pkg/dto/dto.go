package dto

import "io"

type ListFilter struct {
	Search string `form:"search"`
}

type DeleteRequest struct {
	ID string `json:"id" binding:"required"`
}

type IDUri struct {
	ID string `uri:"id" binding:"required"`
}

type AvatarFile struct {
	Reader   io.Reader
	FileName string
}

type MessageResponse struct {
	Message string `json:"message"`
}
