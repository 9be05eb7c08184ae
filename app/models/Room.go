package models

type VerifyRoomDto struct {
	Code string `query:"code"`
}
