// Package errors provides structured error handling with machine-readable codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Account errors
	CodeAccountNotFound      Code = "ACCOUNT_NOT_FOUND"
	CodeAccountNameTaken     Code = "ACCOUNT_NAME_TAKEN"
	CodeAccountBadPassword   Code = "ACCOUNT_BAD_PASSWORD"
	CodeAccountNameEmpty     Code = "ACCOUNT_NAME_EMPTY"
	CodeAccountNotAuthorized Code = "ACCOUNT_NOT_AUTHORIZED"

	// Character errors
	CodeCharacterNotFound  Code = "CHARACTER_NOT_FOUND"
	CodeCharacterEmptyName Code = "CHARACTER_EMPTY_NAME"
	CodeCharacterNameTaken Code = "CHARACTER_NAME_TAKEN"
	CodeCharacterBadStat   Code = "CHARACTER_BAD_STAT"

	// Dice errors
	CodeDiceEmptyPool   Code = "DICE_EMPTY_POOL"
	CodeDiceBadModifier Code = "DICE_BAD_MODIFIER"

	// Experience errors
	CodeXPInsufficient Code = "XP_INSUFFICIENT"
	CodeXPBadSource    Code = "XP_BAD_SOURCE"
	CodeXPUnknownStat  Code = "XP_UNKNOWN_STAT"

	// Condition and tilt errors
	CodeConditionUnknown  Code = "CONDITION_UNKNOWN"
	CodeConditionNotHeld  Code = "CONDITION_NOT_HELD"
	CodeTiltUnknown       Code = "TILT_UNKNOWN"
	CodeTiltNotHeld       Code = "TILT_NOT_HELD"
	CodeAspirationLimit   Code = "ASPIRATION_LIMIT"
	CodeAspirationMissing Code = "ASPIRATION_MISSING"
	CodeRateLimited       Code = "RATE_LIMITED"

	// Equipment errors
	CodeEquipmentUnknown Code = "EQUIPMENT_UNKNOWN"

	// Wiki errors
	CodeWikiPageNotFound     Code = "WIKI_PAGE_NOT_FOUND"
	CodeWikiCategoryNotFound Code = "WIKI_CATEGORY_NOT_FOUND"
	CodeWikiSlugTaken        Code = "WIKI_SLUG_TAKEN"
	CodeWikiTitleEmpty       Code = "WIKI_TITLE_EMPTY"
	CodeWikiRevisionNotFound Code = "WIKI_REVISION_NOT_FOUND"
	CodeWikiForbidden        Code = "WIKI_FORBIDDEN"
)

// HTTPStatus maps an error code to an HTTP status for web responses.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeAccountNotFound, CodeCharacterNotFound, CodeWikiPageNotFound,
		CodeWikiCategoryNotFound, CodeWikiRevisionNotFound, CodeConditionUnknown,
		CodeTiltUnknown, CodeEquipmentUnknown, CodeAspirationMissing:
		return http.StatusNotFound
	case CodeAccountNameTaken, CodeCharacterNameTaken, CodeWikiSlugTaken:
		return http.StatusConflict
	case CodeAccountBadPassword:
		return http.StatusUnauthorized
	case CodeAccountNotAuthorized, CodeWikiForbidden:
		return http.StatusForbidden
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
