package service

import (
	"context"
	"strings"

	"github.com/bagdasarian/club-membership/internal/domain"
)

// AccessLevel - требуемый уровень доступа при проверке прав.
type AccessLevel string

const (
	LevelMember        AccessLevel = "member"
	LevelManager       AccessLevel = "manager"
	LevelManagerOrHost AccessLevel = "managerOrHost"
	LevelHost          AccessLevel = "host"
)

// ParseAccessLevel разбирает уровень доступа без учета регистра.
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "member":
		return LevelMember, nil
	case "manager":
		return LevelManager, nil
	case "managerorhost":
		return LevelManagerOrHost, nil
	case "host":
		return LevelHost, nil
	default:
		return "", domain.NewValidationError("unknown access level: " + s)
	}
}

// IsSelf - чистое сравнение идентичности, без обращения к хранилищу.
func IsSelf(callerID, targetID string) bool {
	return callerID == targetID
}

// PermissionService отвечает на вопрос "авторизован ли вызывающий для
// ресурса": (false, nil) - отказ по роли/состоянию, ошибка NOT_FOUND -
// ресурс отсутствует или неактивен, CONFLICT - нарушен инвариант
// "один чек-лист на расписание". Проверки никогда не меняют состояние.
type PermissionService interface {
	CheckClub(ctx context.Context, clubID int, callerID string, level AccessLevel) (bool, error)
	CheckSchedule(ctx context.Context, scheduleID int, callerID string, level AccessLevel) (bool, error)
	CheckChecklist(ctx context.Context, checklistID int, callerID string, level AccessLevel) (bool, error)
	// CheckChecklistSlot - вход по id расписания для создания чек-листа,
	// когда id чек-листа еще не существует. Живой чек-лист - CONFLICT.
	CheckChecklistSlot(ctx context.Context, scheduleID int, callerID string, level AccessLevel) (bool, error)
	// IsClubHost - разрешительный вариант проверки HOST: мягкое удаление
	// и истечение клуба игнорируются. Верхние резолверы его не используют.
	IsClubHost(ctx context.Context, clubID int, callerID string) (bool, error)
}
