package i18n

import "github.com/1739467001-svg/kaiyan/internal/domain"

// translations is a flat key to per-language string table. Flat keys
// keep lookup O(1) and let missing entries degrade to the raw key.
var translations = map[string]map[domain.Language]string{
	// Navigation
	"nav.home":       {domain.LanguageZH: "首页", domain.LanguageEN: "Home"},
	"nav.activities": {domain.LanguageZH: "研学", domain.LanguageEN: "Activities"},
	"nav.venues":     {domain.LanguageZH: "场地", domain.LanguageEN: "Venues"},
	"nav.profile":    {domain.LanguageZH: "我的", domain.LanguageEN: "Profile"},

	// App home
	"app.banner.title":      {domain.LanguageZH: "开启智慧研学新体验", domain.LanguageEN: "Discover Smart Learning"},
	"app.menu.courses":      {domain.LanguageZH: "研学课程", domain.LanguageEN: "Courses"},
	"app.menu.venues":       {domain.LanguageZH: "场地预约", domain.LanguageEN: "Venues"},
	"app.menu.mentors":      {domain.LanguageZH: "导师团队", domain.LanguageEN: "Mentors"},
	"app.menu.admin":        {domain.LanguageZH: "管理入口", domain.LanguageEN: "Admin"},
	"app.recommend":         {domain.LanguageZH: "热门研学推荐", domain.LanguageEN: "Popular Activities"},
	"app.viewMore":          {domain.LanguageZH: "查看更多", domain.LanguageEN: "View More"},
	"app.searchPlaceholder": {domain.LanguageZH: "搜索研学活动...", domain.LanguageEN: "Search activities..."},
	"app.allThemes":         {domain.LanguageZH: "全部主题", domain.LanguageEN: "All Themes"},

	// Themes
	"theme.nature":  {domain.LanguageZH: "自然探索", domain.LanguageEN: "Nature"},
	"theme.history": {domain.LanguageZH: "人文历史", domain.LanguageEN: "History"},
	"theme.science": {domain.LanguageZH: "科技实践", domain.LanguageEN: "Science"},
	"theme.art":     {domain.LanguageZH: "艺术创作", domain.LanguageEN: "Art"},

	// Profile
	"profile.joined":     {domain.LanguageZH: "已加入开堰研学", domain.LanguageEN: "Member for"},
	"profile.days":       {domain.LanguageZH: "天", domain.LanguageEN: "days"},
	"profile.bookings":   {domain.LanguageZH: "我的预约记录", domain.LanguageEN: "My Bookings"},
	"profile.noBookings": {domain.LanguageZH: "暂无预约", domain.LanguageEN: "No Bookings Yet"},
	"profile.viewTicket": {domain.LanguageZH: "查看票据", domain.LanguageEN: "View Ticket"},
	"profile.adminEntry": {domain.LanguageZH: "员工后台入口", domain.LanguageEN: "Staff Portal Entry"},

	// Booking
	"booking.title":            {domain.LanguageZH: "确认预约信息", domain.LanguageEN: "Confirm Booking"},
	"booking.item":             {domain.LanguageZH: "预约项目", domain.LanguageEN: "Item"},
	"booking.name":             {domain.LanguageZH: "预订人姓名", domain.LanguageEN: "Your Name"},
	"booking.namePlaceholder":  {domain.LanguageZH: "请输入真实姓名", domain.LanguageEN: "Enter your name"},
	"booking.phone":            {domain.LanguageZH: "联系电话", domain.LanguageEN: "Phone Number"},
	"booking.phonePlaceholder": {domain.LanguageZH: "请输入手机号码", domain.LanguageEN: "Enter phone number"},
	"booking.submit":           {domain.LanguageZH: "确认提交预约", domain.LanguageEN: "Submit Booking"},
	"booking.success":          {domain.LanguageZH: "预约成功!", domain.LanguageEN: "Success!"},
	"booking.successDesc":      {domain.LanguageZH: "您的预约申请已提交给团队审核。", domain.LanguageEN: "Your request has been submitted."},

	// Detail
	"detail.duration":       {domain.LanguageZH: "时长", domain.LanguageEN: "Duration"},
	"detail.rating":         {domain.LanguageZH: "评分", domain.LanguageEN: "Rating"},
	"detail.stock":          {domain.LanguageZH: "剩余名额", domain.LanguageEN: "Stock"},
	"detail.description":    {domain.LanguageZH: "活动详情", domain.LanguageEN: "Description"},
	"detail.bookNow":        {domain.LanguageZH: "立即预约", domain.LanguageEN: "Book Now"},
	"detail.capacity":       {domain.LanguageZH: "容纳人数", domain.LanguageEN: "Capacity"},
	"detail.pricing":        {domain.LanguageZH: "参考价格", domain.LanguageEN: "Pricing"},
	"detail.facilities":     {domain.LanguageZH: "配套设施", domain.LanguageEN: "Facilities"},
	"detail.reserve":        {domain.LanguageZH: "预约场地", domain.LanguageEN: "Reserve Venue"},
	"detail.persons":        {domain.LanguageZH: "人", domain.LanguageEN: "Persons"},
	"detail.perHour":        {domain.LanguageZH: "元/小时", domain.LanguageEN: "¥/H"},
	"detail.perPerson":      {domain.LanguageZH: "元/人", domain.LanguageEN: "/Person"},
	"detail.address":        {domain.LanguageZH: "地址", domain.LanguageEN: "Address"},
	"detail.detailsBooking": {domain.LanguageZH: "详情与预订", domain.LanguageEN: "Details & Booking"},

	// Ticket
	"ticket.title":     {domain.LanguageZH: "电子票据详情", domain.LanguageEN: "E-Ticket Details"},
	"ticket.organizer": {domain.LanguageZH: "主办方联系方式", domain.LanguageEN: "Organizer Contact"},
	"ticket.scan":      {domain.LanguageZH: "扫码核销入场", domain.LanguageEN: "Scan for Check-in"},
	"ticket.visitor":   {domain.LanguageZH: "参与人", domain.LanguageEN: "Visitor"},
	"ticket.time":      {domain.LanguageZH: "预约时间", domain.LanguageEN: "Date & Time"},

	// Order statuses
	"status.pending_payment":       {domain.LanguageZH: "待付款", domain.LanguageEN: "Pending Payment"},
	"status.pending_participation": {domain.LanguageZH: "待参与", domain.LanguageEN: "Pending Participation"},
	"status.completed":             {domain.LanguageZH: "已完成", domain.LanguageEN: "Completed"},
	"status.cancelled":             {domain.LanguageZH: "已取消", domain.LanguageEN: "Cancelled"},

	// Login
	"login.error": {domain.LanguageZH: "账号或密码错误，请联系系统管理员", domain.LanguageEN: "Wrong username or password, please contact the administrator"},

	// Admin
	"admin.title":             {domain.LanguageZH: "开堰管理系统", domain.LanguageEN: "Kaiyan Admin"},
	"admin.dashboard":         {domain.LanguageZH: "运营总览", domain.LanguageEN: "Dashboard"},
	"admin.activities":        {domain.LanguageZH: "研学库管理", domain.LanguageEN: "Activities"},
	"admin.venues":            {domain.LanguageZH: "场地资源", domain.LanguageEN: "Resources"},
	"admin.settings":          {domain.LanguageZH: "系统设置", domain.LanguageEN: "Settings"},
	"admin.exit":              {domain.LanguageZH: "退出系统", domain.LanguageEN: "Logout"},
	"admin.addActivity":       {domain.LanguageZH: "新增研学活动", domain.LanguageEN: "New Activity"},
	"admin.addVenue":          {domain.LanguageZH: "新增场地资源", domain.LanguageEN: "New Venue"},
	"admin.searchPlaceholder": {domain.LanguageZH: "快速检索业务数据...", domain.LanguageEN: "Search data..."},

	"admin.columns.title":        {domain.LanguageZH: "课程标题", domain.LanguageEN: "Title"},
	"admin.columns.theme":        {domain.LanguageZH: "所属主题", domain.LanguageEN: "Theme"},
	"admin.columns.price":        {domain.LanguageZH: "单价", domain.LanguageEN: "Price"},
	"admin.columns.stock":        {domain.LanguageZH: "库存/余位", domain.LanguageEN: "Stock"},
	"admin.columns.action":       {domain.LanguageZH: "操作", domain.LanguageEN: "Action"},
	"admin.columns.name":         {domain.LanguageZH: "场地名称", domain.LanguageEN: "Venue Name"},
	"admin.columns.type":         {domain.LanguageZH: "类型", domain.LanguageEN: "Type"},
	"admin.columns.capacity":     {domain.LanguageZH: "容量", domain.LanguageEN: "Capacity"},
	"admin.columns.pricePerHour": {domain.LanguageZH: "时租价格", domain.LanguageEN: "Price/Hour"},

	"admin.stats.revenue":     {domain.LanguageZH: "今日总收入", domain.LanguageEN: "Revenue"},
	"admin.stats.signups":     {domain.LanguageZH: "实时报名人数", domain.LanguageEN: "Live Signups"},
	"admin.stats.utilization": {domain.LanguageZH: "资源利用率", domain.LanguageEN: "Utilization"},
	"admin.stats.growth":      {domain.LanguageZH: "会员增长量", domain.LanguageEN: "Growth"},
	"admin.stats.trend":       {domain.LanguageZH: "营收数据趋势", domain.LanguageEN: "Revenue Trend"},
	"admin.stats.updates":     {domain.LanguageZH: "实时动态", domain.LanguageEN: "Live Updates"},

	// Admin forms
	"form.venueName":    {domain.LanguageZH: "场地名称", domain.LanguageEN: "Venue Name"},
	"form.venueType":    {domain.LanguageZH: "场地类型", domain.LanguageEN: "Venue Type"},
	"form.capacity":     {domain.LanguageZH: "容纳人数", domain.LanguageEN: "Capacity"},
	"form.pricePerHour": {domain.LanguageZH: "每小时价格", domain.LanguageEN: "Price per Hour"},
	"form.address":      {domain.LanguageZH: "具体位置", domain.LanguageEN: "Location"},
	"form.facilities":   {domain.LanguageZH: "配套设施 (用逗号分隔)", domain.LanguageEN: "Facilities (comma separated)"},
	"form.submitVenue":  {domain.LanguageZH: "确认上架场地", domain.LanguageEN: "Publish Venue"},

	// Activity card
	"card.book":      {domain.LanguageZH: "立即报名", domain.LanguageEN: "Book"},
	"card.stock":     {domain.LanguageZH: "剩", domain.LanguageEN: "Left"},
	"card.stockUnit": {domain.LanguageZH: "名额", domain.LanguageEN: ""},
}
