package handler

import (
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

func domainClubToHTTP(club *domain.Club) ClubResponse {
	members := make([]MembershipResponse, 0, len(club.Memberships))
	for _, m := range club.Memberships {
		members = append(members, MembershipResponse{
			MemberID: m.MemberID,
			Role:     string(m.Role),
			State:    string(m.State),
		})
	}

	var endDate *string
	if club.EndDate != nil {
		s := club.EndDate.Format("2006-01-02")
		endDate = &s
	}

	return ClubResponse{
		ClubID:   club.ID,
		Name:     club.Name,
		Capacity: club.Capacity,
		LeaderID: club.LeaderID,
		IsPublic: club.IsPublic,
		IsActive: club.IsActive,
		EndDate:  endDate,
		Members:  members,
	}
}

func httpClubToDomain(req CreateClubRequest) (*domain.Club, error) {
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, domain.NewValidationError("end_date must be in YYYY-MM-DD format")
		}
		endDate = &parsed
	}

	return &domain.Club{
		Name:     req.Name,
		Capacity: req.Capacity,
		LeaderID: req.LeaderID,
		IsPublic: req.IsPublic,
		EndDate:  endDate,
	}, nil
}

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID: member.ID,
		Name:     member.Name,
		Tag:      member.Tag,
		Email:    member.Email,
		IsGuest:  member.IsGuest,
	}
}

func domainScheduleToHTTP(schedule *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:  schedule.ID,
		ClubID:      schedule.ClubID,
		Title:       schedule.Title,
		IsActive:    schedule.IsActive,
		ChecklistID: schedule.ChecklistID,
	}
}

func domainChecklistToHTTP(checklist *domain.Checklist) ChecklistResponse {
	return ChecklistResponse{
		ChecklistID: checklist.ID,
		ScheduleID:  checklist.ScheduleID,
		Title:       checklist.Title,
		IsActive:    checklist.IsActive,
	}
}
