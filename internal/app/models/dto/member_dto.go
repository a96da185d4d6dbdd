package dto

import "github.com/yigit/memberapi/internal/app/models"

// AddressResponse is the JSON form of an embedded address
type AddressResponse struct {
	City    string `json:"city" example:"Seoul"`
	Street  string `json:"street" example:"Main St"`
	Zipcode string `json:"zipcode" example:"111"`
}

// MemberResponse is the JSON form of a member
type MemberResponse struct {
	ID             int64            `json:"id" example:"1"`
	StuNo          string           `json:"stuNo" example:"20218775"`
	EnterYear      string           `json:"enterYear" example:"2021"`
	Name           string           `json:"name" example:"Lee"`
	BirthMd        string           `json:"birthMd" example:"910109"`
	SustCd         string           `json:"sustCd" example:"SUSTCD001"`
	MjrCd          string           `json:"mjrCd" example:"MJRCD002"`
	ShysCd         string           `json:"shysCd" example:"1"`
	ShtmCd         string           `json:"shtmCd" example:"1"`
	FinSchregDivCd string           `json:"finSchregDivCd" example:"FinSchregDivCd001"`
	CptnShtmCnt    *int             `json:"cptnShtmCnt" example:"1"`
	Email          string           `json:"email" example:"devopsTest@naver.com"`
	Gender         models.Gender    `json:"gender" example:"MAN" enums:"MAN,WOMAN" swaggertype:"string"`
	Address        *AddressResponse `json:"address"`
}

// NewMemberResponse maps a member onto its JSON form
func NewMemberResponse(m *models.Member) *MemberResponse {
	if m == nil {
		return nil
	}

	resp := &MemberResponse{
		ID:             m.ID(),
		StuNo:          m.StuNo(),
		EnterYear:      m.EnterYear(),
		Name:           m.Name(),
		BirthMd:        m.BirthMd(),
		SustCd:         m.SustCd(),
		MjrCd:          m.MjrCd(),
		ShysCd:         m.ShysCd(),
		ShtmCd:         m.ShtmCd(),
		FinSchregDivCd: m.FinSchregDivCd(),
		CptnShtmCnt:    m.CptnShtmCnt(),
		Email:          m.Email(),
		Gender:         m.Gender(),
	}

	if addr := m.Address(); addr != nil {
		resp.Address = &AddressResponse{
			City:    addr.City,
			Street:  addr.Street,
			Zipcode: addr.Zipcode,
		}
	}

	return resp
}

// NewMemberListResponse maps members in order. The result is never nil so an
// empty store serializes as [] rather than null.
func NewMemberListResponse(members []*models.Member) []*MemberResponse {
	out := make([]*MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, NewMemberResponse(m))
	}
	return out
}

// MemberIDRequest binds the identifier of a single-member lookup from the path
type MemberIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
