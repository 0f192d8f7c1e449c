package i18n

var catalog = map[Lang]map[string]string{
	Korean: {
		"app.name": "🛡️ Anything Security",

		"nav.dashboard":        "대시보드",
		"nav.campaigns":        "캠페인",
		"nav.users":            "사용자 및 그룹",
		"nav.email_templates":  "이메일 템플릿",
		"nav.landing_pages":    "랜딩 페이지",
		"nav.sending_profiles": "발송 프로필",
		"nav.assets":           "자산 관리",
		"nav.cve":              "CVE 모니터링",
		"nav.activity":         "작업 기록",

		"common.save":           "저장",
		"common.cancel":         "취소",
		"common.edit":           "수정",
		"common.delete":         "삭제",
		"common.detail":         "상세보기",
		"common.close":          "닫기",
		"common.active":         "활성",
		"common.inactive":       "비활성",
		"common.name":           "이름",
		"common.status":         "상태",
		"common.created_at":     "생성일",
		"common.actions":        "작업",
		"common.view_all":       "전체 보기",
		"common.confirm_delete": "정말 삭제하시겠습니까?",
		"common.na":             "N/A",

		"status.draft":     "초안",
		"status.scheduled": "예약됨",
		"status.sent":      "발송됨",
		"status.completed": "완료",
		"status.closed":    "종료됨",

		"dashboard.title":            "대시보드",
		"dashboard.subtitle":         "전체 보안 플랫폼 현황을 한눈에 확인하세요",
		"dashboard.phishing":         "📧 피싱 훈련 현황",
		"dashboard.manage_campaigns": "캠페인 관리",
		"dashboard.total_campaigns":  "전체 캠페인",
		"dashboard.active_campaigns": "활성 캠페인",
		"dashboard.total_recipients": "전체 수신자",
		"dashboard.open_rate":        "메일 오픈율",
		"dashboard.click_rate":       "링크 클릭율",
		"dashboard.report_rate":      "피싱 신고율",
		"dashboard.security":         "💻 자산 및 보안 현황",
		"dashboard.total_assets":     "전체 자산",
		"dashboard.active_assets":    "활성 자산",
		"dashboard.cve_alerts":       "CVE 알림",
		"dashboard.total_templates":  "이메일 템플릿",
		"dashboard.recent":           "📋 최근 캠페인",
		"dashboard.quick":            "⚡ 빠른 작업",

		"quick.new_campaign":      "새 캠페인 생성",
		"quick.new_campaign_desc": "피싱 훈련 캠페인을 시작하세요",
		"quick.new_template":      "이메일 템플릿 생성",
		"quick.new_template_desc": "새로운 피싱 메일 템플릿을 만드세요",
		"quick.new_asset":         "자산 등록",
		"quick.new_asset_desc":    "새로운 IT 자산을 등록하세요",
		"quick.new_landing":       "랜딩 페이지 생성",
		"quick.new_landing_desc":  "피싱 랜딩 페이지를 만드세요",

		"campaigns.title":                      "캠페인 관리",
		"campaigns.subtitle":                   "피싱 훈련 캠페인을 생성하고 관리하세요",
		"campaigns.new":                        "새 캠페인 생성",
		"campaigns.list":                       "캠페인 목록",
		"campaigns.empty":                      "아직 생성된 캠페인이 없습니다. 새 캠페인을 생성해보세요.",
		"campaigns.field.name":                 "캠페인 이름",
		"campaigns.field.name_placeholder":     "예: 2024년 1분기 피싱 훈련",
		"campaigns.field.template":             "이메일 템플릿 선택",
		"campaigns.field.template_placeholder": "템플릿 선택",
		"campaigns.field.recipients":           "수신자 이메일 (쉼표로 구분)",
		"campaigns.field.target_url":           "클릭 시 이동할 URL (선택사항)",
		"campaigns.create":                     "캠페인 생성",
		"campaigns.close":                      "종료",
		"campaigns.confirm_close":              "정말 이 프로젝트를 종료하시겠습니까?",
		"campaigns.detail":                     "캠페인 상세",
		"campaigns.stats":                      "통계",
		"campaigns.opened":                     "메일 오픈",
		"campaigns.clicked":                    "링크 클릭",
		"campaigns.reported":                   "피싱 신고",
		"campaigns.tracking":                   "수신자별 상세 추적",

		"recipients.email":        "이메일",
		"recipients.name":         "이름",
		"recipients.opened":       "오픈",
		"recipients.clicked":      "클릭",
		"recipients.reported":     "신고",
		"recipients.sent_at":      "발송일",
		"recipients.not_opened":   "미오픈",
		"recipients.not_clicked":  "미클릭",
		"recipients.not_reported": "미신고",
		"recipients.not_sent":     "미발송",

		"templates.title":                         "이메일 템플릿",
		"templates.subtitle":                      "피싱 메일 템플릿을 생성하고 관리하세요",
		"templates.add":                           "템플릿 추가",
		"templates.edit":                          "템플릿 수정",
		"templates.new":                           "새 템플릿",
		"templates.list":                          "템플릿 목록",
		"templates.empty":                         "아직 생성된 템플릿이 없습니다. 새 템플릿을 생성해보세요.",
		"templates.field.name":                    "템플릿 이름",
		"templates.field.sender_email":            "발신자 이메일",
		"templates.sender_env":                    "환경 변수에서 관리됩니다",
		"templates.sender_env_hint":               "발신자 이메일은 .env 파일의 SMTP_FROM_EMAIL로 설정됩니다.",
		"templates.sender_current":                "현재 설정",
		"templates.sender_env_value":              "env에서 관리",
		"templates.field.sender_name":             "발신자 이름",
		"templates.field.sender_name_placeholder": "예: 보안팀 (선택사항)",
		"templates.field.subject":                 "제목",
		"templates.field.body":                    "본문 (HTML 소스 그대로)",
		"templates.field.active":                  "활성",
		"templates.body_hint":                     "여기는 HTML을 그대로 붙여넣는 칸입니다. 이스케이프하지 않고 그대로 발송됩니다.",
		"templates.placeholders":                  "템플릿 변수",
		"templates.placeholders_used":             "이 본문에서 사용 중인 변수",
		"templates.col.subject":                   "제목",
		"templates.col.sender":                    "발신자",

		"assets.title":                      "자산 정보 관리",
		"assets.add":                        "자산 추가",
		"assets.edit":                       "자산 수정",
		"assets.new":                        "새 자산",
		"assets.list":                       "자산 목록",
		"assets.empty":                      "등록된 자산이 없습니다.",
		"assets.field.name":                 "자산 이름 *",
		"assets.field.type":                 "자산 유형",
		"assets.field.type_placeholder":     "선택",
		"assets.field.vendor":               "벤더",
		"assets.field.vendor_placeholder":   "예: Microsoft, Apache",
		"assets.field.product":              "제품",
		"assets.field.product_placeholder":  "예: Windows, Tomcat",
		"assets.field.version":              "버전",
		"assets.field.version_placeholder":  "예: 10.0, 9.0.1",
		"assets.field.description":          "설명",
		"assets.field.location":             "위치",
		"assets.field.owner":                "담당자",
		"assets.field.active":               "활성",
		"assets.col.type":                   "유형",
		"assets.col.vendor":                 "벤더",
		"assets.col.product":                "제품",
		"assets.col.version":                "버전",
		"assets.scan":                       "스캔",
		"assets.scan_disabled":              "벤더, 제품, 버전을 모두 입력해야 스캔할 수 있습니다.",
		"asset_type.software":               "소프트웨어",
		"asset_type.hardware":               "하드웨어",
		"asset_type.service":                "서비스",

		"cve.title":            "CVE 모니터링",
		"cve.scan_all":         "전체 스캔",
		"cve.confirm_scan_all": "모든 자산에 대한 CVE 스캔을 시작하시겠습니까?",
		"cve.per_asset":        "자산별 CVE 스캔",
		"cve.filter":           "자산 필터",
		"cve.filter_all":       "전체",
		"cve.filter_apply":     "적용",
		"cve.col.asset":        "자산",
		"cve.scan":             "스캔",
		"cve.alerts":           "CVE 알림 목록",
		"cve.col.cve_id":       "CVE ID",
		"cve.col.severity":     "심각도",
		"cve.col.cvss":         "CVSS 점수",
		"cve.col.notified":     "알림 상태",
		"cve.col.published":    "발생일",
		"cve.notified":         "✓ 알림 완료",
		"cve.pending":          "알림 대기",
		"cve.empty":            "알림이 없습니다.",
		"cve.refreshing":       "잠시 후 스캔 결과를 다시 불러옵니다.",

		"landing.title":    "랜딩 페이지",
		"landing.subtitle": "피싱 링크 클릭 시 표시될 랜딩 페이지를 관리하세요",
		"landing.list":     "랜딩 페이지 목록",
		"landing.add":      "랜딩 페이지 추가",
		"landing.soon":     "랜딩 페이지 관리 기능은 곧 추가될 예정입니다.",

		"sending.title":    "발송 프로필",
		"sending.subtitle": "이메일 발송에 사용할 SMTP 프로필을 관리하세요",
		"sending.list":     "발송 프로필 목록",
		"sending.add":      "프로필 추가",
		"sending.soon":     "발송 프로필 관리 기능은 곧 추가될 예정입니다.",

		"users.title":    "사용자 및 그룹",
		"users.subtitle": "피싱 훈련 대상 사용자와 그룹을 관리하세요",
		"users.list":     "사용자 그룹",
		"users.add":      "그룹 추가",
		"users.soon":     "사용자 및 그룹 관리 기능은 곧 추가될 예정입니다.",

		"activity.title":    "작업 기록",
		"activity.subtitle": "콘솔에서 수행된 최근 변경 작업",
		"activity.empty":    "기록된 작업이 없습니다.",
		"activity.when":     "시각",
		"activity.action":   "작업",
		"activity.resource": "대상",
		"activity.detail":   "내용",

		"flash.campaign.created":      "캠페인이 생성되었습니다. 이메일이 발송됩니다.",
		"flash.campaign.create_fail":  "캠페인 생성에 실패했습니다.",
		"flash.campaign.closed":       "프로젝트가 종료되었습니다.",
		"flash.campaign.close_fail":   "프로젝트 종료에 실패했습니다.",
		"flash.template.saved":        "템플릿이 저장되었습니다.",
		"flash.template.save_fail":    "템플릿 저장에 실패했습니다.",
		"flash.template.deleted":      "템플릿이 삭제되었습니다.",
		"flash.template.delete_fail":  "템플릿 삭제에 실패했습니다.",
		"flash.asset.saved":           "자산이 저장되었습니다.",
		"flash.asset.save_fail":       "자산 저장에 실패했습니다.",
		"flash.asset.deleted":         "자산이 삭제되었습니다.",
		"flash.asset.delete_fail":     "자산 삭제에 실패했습니다.",
		"flash.scan.started":          "CVE 스캔이 시작되었습니다. 잠시 후 결과를 확인하세요.",
		"flash.scan.all_started":      "모든 자산에 대한 CVE 스캔이 시작되었습니다.",
		"flash.scan.fail":             "CVE 스캔에 실패했습니다.",
		"flash.scan.incomplete":       "벤더, 제품, 버전이 모두 있어야 CVE 스캔을 할 수 있습니다.",
		"flash.load_fail":             "데이터를 불러오지 못했습니다.",
		"flash.validation":            "입력값을 확인하세요",
	},
	English: {
		"nav.dashboard":        "Dashboard",
		"nav.campaigns":        "Campaigns",
		"nav.users":            "Users & Groups",
		"nav.email_templates":  "Email Templates",
		"nav.landing_pages":    "Landing Pages",
		"nav.sending_profiles": "Sending Profiles",
		"nav.assets":           "Assets",
		"nav.cve":              "CVE Monitoring",
		"nav.activity":         "Activity",

		"common.save":           "Save",
		"common.cancel":         "Cancel",
		"common.edit":           "Edit",
		"common.delete":         "Delete",
		"common.detail":         "Details",
		"common.close":          "Close",
		"common.active":         "Active",
		"common.inactive":       "Inactive",
		"common.name":           "Name",
		"common.status":         "Status",
		"common.created_at":     "Created",
		"common.actions":        "Actions",
		"common.view_all":       "View all",
		"common.confirm_delete": "Delete this item?",

		"status.draft":     "Draft",
		"status.scheduled": "Scheduled",
		"status.sent":      "Sent",
		"status.completed": "Completed",
		"status.closed":    "Closed",

		"dashboard.title":            "Dashboard",
		"dashboard.subtitle":         "The whole security platform at a glance",
		"dashboard.phishing":         "📧 Phishing training",
		"dashboard.manage_campaigns": "Manage campaigns",
		"dashboard.total_campaigns":  "Campaigns",
		"dashboard.active_campaigns": "Active campaigns",
		"dashboard.total_recipients": "Recipients",
		"dashboard.open_rate":        "Open rate",
		"dashboard.click_rate":       "Click rate",
		"dashboard.report_rate":      "Report rate",
		"dashboard.security":         "💻 Assets and security",
		"dashboard.total_assets":     "Assets",
		"dashboard.active_assets":    "Active assets",
		"dashboard.cve_alerts":       "CVE alerts",
		"dashboard.total_templates":  "Email templates",
		"dashboard.recent":           "📋 Recent campaigns",
		"dashboard.quick":            "⚡ Quick actions",

		"quick.new_campaign":      "New campaign",
		"quick.new_campaign_desc": "Start a phishing training campaign",
		"quick.new_template":      "New email template",
		"quick.new_template_desc": "Write a new phishing email",
		"quick.new_asset":         "Register asset",
		"quick.new_asset_desc":    "Add an IT asset to track",
		"quick.new_landing":       "New landing page",
		"quick.new_landing_desc":  "Build a phishing landing page",

		"campaigns.title":                      "Campaigns",
		"campaigns.subtitle":                   "Create and manage phishing training campaigns",
		"campaigns.new":                        "New campaign",
		"campaigns.list":                       "Campaign list",
		"campaigns.empty":                      "No campaigns yet. Create the first one.",
		"campaigns.field.name":                 "Campaign name",
		"campaigns.field.name_placeholder":     "e.g. Q1 2024 phishing drill",
		"campaigns.field.template":             "Email template",
		"campaigns.field.template_placeholder": "Select a template",
		"campaigns.field.recipients":           "Recipient emails (comma separated)",
		"campaigns.field.target_url":           "Click-through URL (optional)",
		"campaigns.create":                     "Create campaign",
		"campaigns.close":                      "Close",
		"campaigns.confirm_close":              "Close this campaign for good?",
		"campaigns.detail":                     "Campaign",
		"campaigns.stats":                      "Statistics",
		"campaigns.opened":                     "Opened",
		"campaigns.clicked":                    "Clicked",
		"campaigns.reported":                   "Reported",
		"campaigns.tracking":                   "Per-recipient tracking",

		"recipients.email":        "Email",
		"recipients.name":         "Name",
		"recipients.opened":       "Opened",
		"recipients.clicked":      "Clicked",
		"recipients.reported":     "Reported",
		"recipients.sent_at":      "Sent",
		"recipients.not_opened":   "Not opened",
		"recipients.not_clicked":  "Not clicked",
		"recipients.not_reported": "Not reported",
		"recipients.not_sent":     "Not sent",

		"templates.title":                         "Email templates",
		"templates.subtitle":                      "Create and manage phishing email templates",
		"templates.add":                           "Add template",
		"templates.edit":                          "Edit template",
		"templates.new":                           "New template",
		"templates.list":                          "Template list",
		"templates.empty":                         "No templates yet. Create the first one.",
		"templates.field.name":                    "Template name",
		"templates.field.sender_email":            "Sender email",
		"templates.sender_env":                    "Managed through the environment",
		"templates.sender_env_hint":               "The sender address comes from SMTP_FROM_EMAIL in the backend's .env file.",
		"templates.sender_current":                "Current value",
		"templates.sender_env_value":              "from env",
		"templates.field.sender_name":             "Sender name",
		"templates.field.sender_name_placeholder": "e.g. Security team (optional)",
		"templates.field.subject":                 "Subject",
		"templates.field.body":                    "Body (raw HTML)",
		"templates.field.active":                  "Active",
		"templates.body_hint":                     "Paste HTML as is. It is sent without escaping.",
		"templates.placeholders":                  "Template variables",
		"templates.placeholders_used":             "Variables used in this body",
		"templates.col.subject":                   "Subject",
		"templates.col.sender":                    "Sender",

		"assets.title":                     "Asset inventory",
		"assets.add":                       "Add asset",
		"assets.edit":                      "Edit asset",
		"assets.new":                       "New asset",
		"assets.list":                      "Asset list",
		"assets.empty":                     "No assets registered.",
		"assets.field.name":                "Asset name *",
		"assets.field.type":                "Asset type",
		"assets.field.type_placeholder":    "Select",
		"assets.field.vendor":              "Vendor",
		"assets.field.vendor_placeholder":  "e.g. Microsoft, Apache",
		"assets.field.product":             "Product",
		"assets.field.product_placeholder": "e.g. Windows, Tomcat",
		"assets.field.version":             "Version",
		"assets.field.version_placeholder": "e.g. 10.0, 9.0.1",
		"assets.field.description":         "Description",
		"assets.field.location":            "Location",
		"assets.field.owner":               "Owner",
		"assets.field.active":              "Active",
		"assets.col.type":                  "Type",
		"assets.col.vendor":                "Vendor",
		"assets.col.product":               "Product",
		"assets.col.version":               "Version",
		"assets.scan":                      "Scan",
		"assets.scan_disabled":             "Vendor, product and version are all needed to scan.",
		"asset_type.software":              "Software",
		"asset_type.hardware":              "Hardware",
		"asset_type.service":               "Service",

		"cve.title":            "CVE monitoring",
		"cve.scan_all":         "Scan all",
		"cve.confirm_scan_all": "Start a CVE scan of every asset?",
		"cve.per_asset":        "Scan by asset",
		"cve.filter":           "Asset filter",
		"cve.filter_all":       "All",
		"cve.filter_apply":     "Apply",
		"cve.col.asset":        "Asset",
		"cve.scan":             "Scan",
		"cve.alerts":           "CVE alerts",
		"cve.col.severity":     "Severity",
		"cve.col.cvss":         "CVSS",
		"cve.col.notified":     "Notification",
		"cve.col.published":    "Published",
		"cve.notified":         "✓ Notified",
		"cve.pending":          "Pending",
		"cve.empty":            "No alerts.",
		"cve.refreshing":       "Scan results will reload shortly.",

		"landing.title":    "Landing pages",
		"landing.subtitle": "Pages shown when a phishing link is clicked",
		"landing.list":     "Landing page list",
		"landing.add":      "Add landing page",
		"landing.soon":     "Landing page management is coming soon.",

		"sending.title":    "Sending profiles",
		"sending.subtitle": "SMTP profiles used to send emails",
		"sending.list":     "Sending profile list",
		"sending.add":      "Add profile",
		"sending.soon":     "Sending profile management is coming soon.",

		"users.title":    "Users & groups",
		"users.subtitle": "People and groups targeted by phishing training",
		"users.list":     "User groups",
		"users.add":      "Add group",
		"users.soon":     "User and group management is coming soon.",

		"activity.title":    "Activity",
		"activity.subtitle": "Recent changes made from the console",
		"activity.empty":    "No activity recorded.",
		"activity.when":     "When",
		"activity.action":   "Action",
		"activity.resource": "Resource",
		"activity.detail":   "Detail",

		"flash.campaign.created":     "Campaign created. Emails are on their way.",
		"flash.campaign.create_fail": "Could not create the campaign.",
		"flash.campaign.closed":      "Campaign closed.",
		"flash.campaign.close_fail":  "Could not close the campaign.",
		"flash.template.saved":       "Template saved.",
		"flash.template.save_fail":   "Could not save the template.",
		"flash.template.deleted":     "Template deleted.",
		"flash.template.delete_fail": "Could not delete the template.",
		"flash.asset.saved":          "Asset saved.",
		"flash.asset.save_fail":      "Could not save the asset.",
		"flash.asset.deleted":        "Asset deleted.",
		"flash.asset.delete_fail":    "Could not delete the asset.",
		"flash.scan.started":         "CVE scan started. Check back for results shortly.",
		"flash.scan.all_started":     "CVE scan started for all assets.",
		"flash.scan.fail":            "Could not start the CVE scan.",
		"flash.scan.incomplete":      "An asset needs vendor, product and version to be scanned.",
		"flash.load_fail":            "Could not load data.",
		"flash.validation":           "Please check the highlighted fields",
	},
}
