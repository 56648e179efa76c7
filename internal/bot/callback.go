package bot

import (
	"errors"
	"strconv"
	"strings"
)

// Callback-данные кодируются как "<verb>_<id>": действие плюс числовая цель.
// Текст кнопки данные не несёт.
const (
	verbApprove    = "approve"
	verbDisapprove = "disapprove"
	verbBan        = "ban"
	verbUnban      = "unban"
	verbPromote    = "promote"
	verbDemote     = "demote"
	verbUser       = "user"
	verbEdit       = "edit"
	verbEditName   = "editname"
	verbEditQty    = "editqty"
	verbEditCat    = "editcat"
	verbDelete     = "delete"
)

type callbackAction struct {
	Verb     string
	TargetID int64
}

var errBadCallback = errors.New("malformed callback data")

func callbackData(verb string, id int64) string {
	return verb + "_" + strconv.FormatInt(id, 10)
}

func parseCallback(data string) (callbackAction, error) {
	i := strings.LastIndex(data, "_")
	if i <= 0 || i == len(data)-1 {
		return callbackAction{}, errBadCallback
	}
	id, err := strconv.ParseInt(data[i+1:], 10, 64)
	if err != nil || id <= 0 {
		return callbackAction{}, errBadCallback
	}
	return callbackAction{Verb: data[:i], TargetID: id}, nil
}

// adminVerb действия, требующие прав администратора
func adminVerb(verb string) bool {
	switch verb {
	case verbApprove, verbDisapprove, verbBan, verbUnban, verbPromote, verbDemote, verbUser:
		return true
	}
	return false
}
