package mapper

import (
	"time"

	"github.com/courtbook/booking-client-go/internal/model"
)

func PlaymatePost(dto model.PlaymatePostDTO) (model.PlaymatePost, error) {
	if dto.PostID == 0 {
		return model.PlaymatePost{}, missingID("playmate post")
	}
	return model.PlaymatePost{
		ID:            dto.PostID,
		AccountID:     dto.AccountID,
		AuthorName:    dto.AuthorName,
		CourtID:       dto.CourtID,
		CourtName:     dto.CourtName,
		PlayDate:      parseTime(dto.PlayDate),
		StartTime:     dto.StartTime,
		EndTime:       dto.EndTime,
		NeededPlayers: dto.NeededPlayers,
		SkillLevel:    dto.SkillLevel,
		Description:   dto.Description,
		Status:        dto.Status,
	}, nil
}

func PlaymatePostCreate(u model.PlaymatePost) model.PlaymatePostCreateDTO {
	playDate := ""
	if u.PlayDate != nil {
		playDate = u.PlayDate.UTC().Format(time.RFC3339)
	}
	return model.PlaymatePostCreateDTO{
		CourtID:       u.CourtID,
		PlayDate:      playDate,
		StartTime:     u.StartTime,
		EndTime:       u.EndTime,
		NeededPlayers: u.NeededPlayers,
		SkillLevel:    stringValue(u.SkillLevel),
		Description:   stringValue(u.Description),
	}
}

func PlaymateJoin(dto model.PlaymateJoinDTO) (model.PlaymateJoin, error) {
	if dto.JoinID == 0 {
		return model.PlaymateJoin{}, missingID("playmate join")
	}
	return model.PlaymateJoin{
		ID:        dto.JoinID,
		PostID:    dto.PostID,
		AccountID: dto.AccountID,
		FullName:  dto.FullName,
		Status:    dto.Status,
		JoinedAt:  parseTime(dto.JoinedAt),
	}, nil
}
