package handler

import "github.com/gin-gonic/gin"

// RegisterCallerRoutes mounts the caller API under group. requireCaller must resolve the caller id.
func RegisterCallerRoutes(group *gin.RouterGroup, requireCaller gin.HandlerFunc, reminders *ReminderHandler, alarms *AlarmHandler) {
	caller := group.Group("/caller", requireCaller)
	{
		caller.POST("/reminders", reminders.HandleCreate)
		caller.GET("/reminders", reminders.HandleList)
		caller.DELETE("/reminders/:reminderId", reminders.HandleCancel)
		caller.GET("/check-reminders", alarms.HandleCheckReminders)
		caller.GET("/reminder-queue", alarms.HandleGetQueue)
		caller.POST("/reminder-queue/:queueId/dismiss", alarms.HandleDismiss)
	}
}
