package usecase

import (
	"context"
	"time"

	"voicetask/internal/model"
	"voicetask/internal/task/repository"
	"voicetask/internal/voice"
	"voicetask/pkg/gcalendar"
	"voicetask/pkg/voiceparse"
)

func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, input voice.ConfirmInput) (voice.ConfirmOutput, error) {
	sess, ok := uc.sessions.Get(input.SessionID)
	if !ok || sess.Scope.UserID != sc.UserID {
		return voice.ConfirmOutput{}, voice.ErrSessionNotFound
	}

	parse := sess.Parse.With(input.Edits)

	category := parse.SuggestedCategory
	if category == "" {
		category = uc.defaultCategory
	}
	priority := string(voiceparse.PriorityMedium)
	if parse.SuggestedPriority != nil {
		priority = string(*parse.SuggestedPriority)
	}

	var calendarLink string
	if !input.SkipCalendar {
		calendarLink = uc.tryCreateReminder(ctx, parse)
	}

	task, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:        parse.TaskTitle,
		Description:  parse.Description,
		DueDate:      parse.ParsedDate,
		DueTime:      parse.ParsedTime,
		Category:     category,
		Priority:     priority,
		CalendarLink: calendarLink,
		Source:       sess.Source,
	})
	if err != nil {
		uc.l.Errorf(ctx, "voice: confirm of session %s failed to create task: %v", sess.ID, err)
		return voice.ConfirmOutput{}, voice.ErrTaskCreate
	}

	uc.sessions.Remove(input.SessionID)
	uc.l.Infof(ctx, "voice: session %s confirmed into task %s", sess.ID, task.ID)

	return voice.ConfirmOutput{Task: task}, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, sessionID string) error {
	sess, ok := uc.sessions.Get(sessionID)
	if !ok || sess.Scope.UserID != sc.UserID {
		return voice.ErrSessionNotFound
	}
	uc.sessions.Remove(sessionID)
	uc.l.Debugf(ctx, "voice: session %s cancelled", sessionID)
	return nil
}

// tryCreateReminder creates a calendar reminder for the confirmed parse.
// Failures are non-fatal: the task is still created, just without a link.
func (uc *implUseCase) tryCreateReminder(ctx context.Context, parse voiceparse.ParsedVoiceInput) string {
	if uc.calendar == nil || parse.ParsedDate == nil {
		return ""
	}

	start := *parse.ParsedDate
	allDay := parse.ParsedTime == nil
	end := start.AddDate(0, 0, 1)
	if !allDay {
		start = time.Date(start.Year(), start.Month(), start.Day(),
			parse.ParsedTime.Hour, parse.ParsedTime.Minute, 0, 0, uc.loc)
		end = start.Add(time.Hour)
	}

	reminder, err := uc.calendar.CreateReminder(ctx, gcalendar.CreateReminderRequest{
		CalendarID:   uc.calendarID,
		Summary:      parse.TaskTitle,
		Description:  parse.Description,
		StartTime:    start,
		EndTime:      end,
		AllDay:       allDay,
		PopupMinutes: uc.popupMinutes,
		Timezone:     uc.loc.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "voice: reminder creation failed for %q (non-fatal): %v", parse.TaskTitle, err)
		return ""
	}
	return reminder.HtmlLink
}
