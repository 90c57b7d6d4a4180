package routes

import (
	"repairflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathReports = "/reports"

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.TechnicianReportHandler) {
	reports := rg.Group(PathReports, handlers.RequireCaller())
	{
		// Draft lifecycle, technician only.
		reports.POST("", reportHandler.CreateDraft)
		reports.GET("/:report_id", reportHandler.GetReport)
		reports.PATCH("/:report_id", reportHandler.UpdateDraft)
		reports.DELETE("/:report_id", reportHandler.DeleteDraft)

		// Workflow actions.
		reports.POST("/:report_id/submit", reportHandler.Submit)
		reports.POST("/:report_id/approve", reportHandler.Approve)
		reports.POST("/:report_id/reject", reportHandler.Reject)
		reports.POST("/:report_id/start", reportHandler.StartWork)
		reports.POST("/:report_id/complete", reportHandler.Complete)
	}
}
