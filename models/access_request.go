// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessRequestStatus is the lifecycle state of an access request.
type AccessRequestStatus string

const (
	AccessRequestPending  AccessRequestStatus = "PENDING"
	AccessRequestApproved AccessRequestStatus = "APPROVED"
	AccessRequestRejected AccessRequestStatus = "REJECTED"
)

// AccessRequest is a request by one user to study another user's private
// card set.
type AccessRequest struct {
	ID                int64               `json:"id"`
	CardSetID         int64               `json:"cardSetId"`
	CardSetName       string              `json:"cardSetName"`
	RequesterID       int64               `json:"requesterId"`
	RequesterUsername string              `json:"requesterUsername"`
	Status            AccessRequestStatus `json:"status"`
}

// MessageResponse is the generic {"message": "..."} body some endpoints return.
type MessageResponse struct {
	Message string `json:"message"`
}
