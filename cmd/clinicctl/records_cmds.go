package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/itm-clinic/clinic-client/internal/utils"
	"github.com/itm-clinic/clinic-client/medical"
	"github.com/itm-clinic/clinic-client/query"
	"github.com/spf13/cobra"
)

func pageFlags(cmd *cobra.Command, q *medical.PaginationQuery) {
	cmd.Flags().IntVar(&q.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&q.Limit, "limit", 10, "items per page")
}

func idArg(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("mã không hợp lệ: %q", s)
	}
	return id, nil
}

func newAppointmentsCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{Use: "appointments", Short: "Your appointments"}

	var (
		f        medical.AppointmentFilter
		status   string
		from, to string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			p, err := a.profile()
			if err != nil {
				return err
			}
			f.Status = medical.AppointmentStatus(status)
			if from != "" || to != "" {
				f.DateRange = &medical.DateRange{StartDate: from, EndDate: to}
			}
			page, err := query.Fetch(cmd.Context(), a.cache, query.Keys.AppointmentList(p.ID, f),
				func(ctx context.Context) (medical.Paginated[medical.Appointment], error) {
					return a.api.Appointments.List(ctx, p.ID, f)
				})
			if err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNGÀY\tGIỜ\tLOẠI\tTRẠNG THÁI\tBÁC SĨ")
			for _, ap := range page.Data {
				doctor := "-"
				if ap.Doctor != nil {
					doctor = ap.Doctor.DisplayName()
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", ap.ID, ap.AppointmentDate, ap.StartTime, ap.Type, ap.Status, doctor)
			}
			fmt.Fprintf(w, "Trang %d/%d, tổng %d\n", page.Pagination.Page, page.Pagination.TotalPages, page.Pagination.Total)
			return w.Flush()
		},
	}
	pageFlags(list, &f.PaginationQuery)
	list.Flags().StringVar(&status, "status", "", "Scheduled, Confirmed, Completed, Cancelled...")
	list.Flags().StringVar(&from, "from", "", "start date YYYY-MM-DD")
	list.Flags().StringVar(&to, "to", "", "end date YYYY-MM-DD")

	var reason string
	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			p, err := a.profile()
			if err != nil {
				return err
			}
			id, err := idArg(args[0])
			if err != nil {
				return err
			}
			ap, err := query.Mutate(cmd.Context(), a.cache, func(ctx context.Context) (medical.Appointment, error) {
				return a.api.Appointments.Cancel(ctx, id, reason)
			}, query.Keys.Appointments(p.ID), query.Keys.Appointment(id))
			if err != nil {
				return err
			}
			a.cache.Invalidate(query.Keys.DoctorAvailability(ap.DoctorID))
			query.SetData(a.cache, query.Keys.Appointment(ap.ID), ap)
			fmt.Fprintf(cmd.OutOrStdout(), "Đã hủy lịch hẹn %d\n", ap.ID)
			return nil
		},
	}
	cancel.Flags().StringVar(&reason, "reason", "", "why the appointment is cancelled")

	cmd.AddCommand(list, cancel)
	return cmd
}

func newDoctorsCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{Use: "doctors", Short: "The clinic's doctors"}

	var (
		f         medical.DoctorFilter
		available bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List doctors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			if available {
				f.IsAvailable = utils.Ptr(true)
			}
			page, err := query.Fetch(cmd.Context(), a.cache, query.Keys.DoctorList(f),
				func(ctx context.Context) (medical.Paginated[medical.Doctor], error) {
					return a.api.Doctors.List(ctx, f)
				})
			if err != nil {
				return err
			}
			return printDoctors(cmd, page.Data)
		},
	}
	pageFlags(list, &f.PaginationQuery)
	list.Flags().StringVar(&f.Specialization, "specialization", "", "filter by specialization")
	list.Flags().BoolVar(&available, "available", false, "only doctors taking appointments")

	var q medical.DoctorSearch
	search := &cobra.Command{
		Use:   "search <text>",
		Short: "Search doctors by name or specialization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			q.Query = args[0]
			doctors, err := query.Fetch(cmd.Context(), a.cache, query.Keys.DoctorSearch(q),
				func(ctx context.Context) ([]medical.Doctor, error) {
					return a.api.Doctors.Search(ctx, q)
				})
			if err != nil {
				return err
			}
			return printDoctors(cmd, doctors)
		},
	}
	search.Flags().StringVar(&q.Specialization, "specialization", "", "specialization")
	search.Flags().StringVar(&q.Date, "date", "", "available on YYYY-MM-DD")

	cmd.AddCommand(list, search)
	return cmd
}

func printDoctors(cmd *cobra.Command, doctors []medical.Doctor) error {
	w := table(cmd.OutOrStdout())
	fmt.Fprintln(w, "ID\tHỌ TÊN\tCHUYÊN KHOA\tKINH NGHIỆM\tPHÍ KHÁM\tNHẬN LỊCH")
	for _, d := range doctors {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d năm\t%.0f\t%t\n",
			d.ID, d.DisplayName(), d.Specialization, d.YearsOfExperience, d.ConsultationFee, d.IsAvailable)
	}
	return w.Flush()
}

func newCyclesCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{Use: "cycles", Short: "Your treatment cycles"}

	var (
		f      medical.TreatmentCycleFilter
		status string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List treatment cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			p, err := a.profile()
			if err != nil {
				return err
			}
			f.Status = medical.CycleStatus(status)
			page, err := query.Fetch(cmd.Context(), a.cache, query.Keys.TreatmentList(p.ID, f),
				func(ctx context.Context) (medical.Paginated[medical.TreatmentCycle], error) {
					return a.api.Cycles.List(ctx, p.ID, f)
				})
			if err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tCHU KỲ\tTRẠNG THÁI\tBẮT ĐẦU\tDỰ KIẾN KẾT THÚC\tCHI PHÍ")
			for _, c := range page.Data {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%.0f\n",
					c.ID, c.CycleNumber, c.Status, orDash(c.StartDate), orDash(c.ExpectedEndDate), c.TotalCost)
			}
			return w.Flush()
		},
	}
	pageFlags(list, &f.PaginationQuery)
	list.Flags().StringVar(&status, "status", "", "Planning, Active, Paused, Completed, Cancelled")

	cmd.AddCommand(list)
	return cmd
}

func newNotificationsCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{Use: "notifications", Short: "Your notifications"}

	var (
		f      medical.NotificationFilter
		unread bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			p, err := a.profile()
			if err != nil {
				return err
			}
			if unread {
				f.IsRead = utils.Ptr(false)
			}
			page, err := query.Fetch(cmd.Context(), a.cache, query.Keys.NotificationList(p.ID, f),
				func(ctx context.Context) (medical.Paginated[medical.Notification], error) {
					return a.api.Notifications.List(ctx, p.ID, f)
				})
			if err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\t\tTIÊU ĐỀ\tNỘI DUNG")
			for _, n := range page.Data {
				mark := " "
				if !n.IsRead {
					mark = "*"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", n.ID, mark, n.Title, n.Message)
			}
			if count, err := a.api.Notifications.UnreadCount(cmd.Context(), p.ID); err == nil {
				fmt.Fprintf(w, "Chưa đọc: %d\n", count)
			}
			return w.Flush()
		},
	}
	pageFlags(list, &f.PaginationQuery)
	list.Flags().BoolVar(&unread, "unread", false, "only unread notifications")

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			p, err := a.profile()
			if err != nil {
				return err
			}
			id, err := idArg(args[0])
			if err != nil {
				return err
			}
			_, err = query.Mutate(cmd.Context(), a.cache, func(ctx context.Context) (medical.Notification, error) {
				return a.api.Notifications.MarkRead(ctx, id)
			}, query.Keys.Notifications(p.ID))
			return err
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			p, err := a.profile()
			if err != nil {
				return err
			}
			_, err = query.Mutate(cmd.Context(), a.cache, func(ctx context.Context) (struct{}, error) {
				return struct{}{}, a.api.Notifications.MarkAllRead(ctx, p.ID)
			}, query.Keys.Notifications(p.ID))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Đã đánh dấu tất cả là đã đọc")
			return nil
		},
	}

	cmd.AddCommand(list, read, readAll)
	return cmd
}

func newHistoryCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{Use: "history", Short: "Your medical history"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List medical history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			p, err := a.profile()
			if err != nil {
				return err
			}
			items, err := query.Fetch(cmd.Context(), a.cache, query.Keys.MedicalHistory(p.ID),
				func(ctx context.Context) ([]medical.MedicalHistory, error) {
					return a.api.History.List(ctx, p.ID)
				})
			if err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tBỆNH LÝ\tCHẨN ĐOÁN\tĐIỀU TRỊ\tCÒN HIỆU LỰC")
			for _, h := range items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", h.ID, h.Condition, orDash(h.DiagnosisDate), orDash(h.Treatment), h.IsActive)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(list)
	return cmd
}
