package catalog

import "lingua_plan_backend/internal/model"

// PackTopic 话题包内的一个条目
type PackTopic struct {
	Title    string
	Scenario string
}

// TopicPack 预置话题包，导入时为每个条目实例化新话题，
// 不与目录条目共享身份
type TopicPack struct {
	Name       string
	Category   model.TopicCategory
	MinLevel   model.CEFRLevel
	Directions []model.LearningDirection
	Topics     []PackTopic
}

// PackByName 按名称取话题包
func PackByName(name string) (TopicPack, bool) {
	for _, p := range Packs {
		if p.Name == name {
			return p, true
		}
	}
	return TopicPack{}, false
}

var lifeDirs = []model.LearningDirection{model.DirectionLife}
var bizDirs = []model.LearningDirection{model.DirectionBusiness}
var bothDirs = []model.LearningDirection{model.DirectionLife, model.DirectionBusiness}

// Packs 全量话题包目录，遍历顺序即推荐输出顺序
var Packs = []TopicPack{
	// 生活类
	{
		Name: "出国旅行生存包 Travel Survival", Category: model.CategoryLife,
		MinLevel: model.LevelA1, Directions: lifeDirs,
		Topics: []PackTopic{
			{Title: "机场与安检", Scenario: "值机、托运、安检问答"},
			{Title: "酒店入住", Scenario: "入住登记与房间问题反馈"},
			{Title: "城市交通", Scenario: "地铁购票与打车沟通"},
			{Title: "紧急求助", Scenario: "丢失护照与就医求助"},
		},
	},
	{
		Name: "美食与社交 Food & Social", Category: model.CategoryLife,
		MinLevel: model.LevelA2, Directions: lifeDirs,
		Topics: []PackTopic{
			{Title: "西餐礼仪", Scenario: "正式晚宴的点餐与交谈"},
			{Title: "咖啡文化", Scenario: "咖啡店点单与闲聊"},
			{Title: "家宴待客", Scenario: "邀请外国朋友来家做客"},
		},
	},
	{
		Name: "海外生活安家 Settling Abroad", Category: model.CategoryLife,
		MinLevel: model.LevelB1, Directions: lifeDirs,
		Topics: []PackTopic{
			{Title: "银行开户", Scenario: "开户材料与账户类型咨询"},
			{Title: "子女入学", Scenario: "学校开放日提问"},
			{Title: "社区事务", Scenario: "物业报修与邻里沟通"},
			{Title: "租车与驾照", Scenario: "租车条款确认"},
		},
	},
	{
		Name: "影视与流行文化 Pop Culture", Category: model.CategoryLife,
		MinLevel: model.LevelA2Plus, Directions: lifeDirs,
		Topics: []PackTopic{
			{Title: "剧集安利", Scenario: "向朋友推荐一部剧"},
			{Title: "音乐节", Scenario: "音乐节购票与现场交流"},
			{Title: "体育赛事", Scenario: "看球时的助威与讨论"},
		},
	},
	// 商务技能类
	{
		Name: "邮件写作进阶 Email Mastery", Category: model.CategoryBusinessSkills,
		MinLevel: model.LevelA2, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "催办邮件", Scenario: "礼貌催促逾期回复"},
			{Title: "坏消息邮件", Scenario: "通知涨价或延期"},
			{Title: "跨时区协调", Scenario: "多方会议时间协调"},
		},
	},
	{
		Name: "演示与路演 Presentations & Pitching", Category: model.CategoryBusinessSkills,
		MinLevel: model.LevelB1, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "开场三十秒", Scenario: "抓住听众的开场设计"},
			{Title: "图表讲解", Scenario: "趋势、对比与异常值表达"},
			{Title: "问答环节", Scenario: "应对刁钻提问"},
			{Title: "电梯演讲", Scenario: "60秒说清一个项目"},
		},
	},
	{
		Name: "谈判与影响力 Negotiation & Influence", Category: model.CategoryBusinessSkills,
		MinLevel: model.LevelB1Plus, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "开价与还价", Scenario: "锚定与让步节奏"},
			{Title: "僵局破解", Scenario: "换议题与搁置策略"},
			{Title: "合同条款", Scenario: "关键条款的口头确认"},
		},
	},
	{
		Name: "会议主持 Meeting Facilitation", Category: model.CategoryBusinessSkills,
		MinLevel: model.LevelB1, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "议程推进", Scenario: "控时与拉回跑题讨论"},
			{Title: "意见征集", Scenario: "让沉默者开口"},
			{Title: "会议纪要", Scenario: "行动项的口头确认"},
		},
	},
	// 行业类
	{
		Name: "互联网与软件 Tech & Software", Category: model.CategoryIndustry,
		MinLevel: model.LevelB1, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "产品迭代评审", Scenario: "sprint review 汇报"},
			{Title: "技术方案讨论", Scenario: "架构取舍的英文表达"},
			{Title: "用户访谈", Scenario: "海外用户调研提纲"},
		},
	},
	{
		Name: "金融与投资 Finance & Investment", Category: model.CategoryIndustry,
		MinLevel: model.LevelB1Plus, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "财报解读", Scenario: "向客户讲解季报要点"},
			{Title: "路演问答", Scenario: "基金路演的投资人问答"},
			{Title: "风控沟通", Scenario: "合规与风险提示表达"},
		},
	},
	{
		Name: "医疗与制药 Healthcare & Pharma", Category: model.CategoryIndustry,
		MinLevel: model.LevelB1, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "学术会议交流", Scenario: "海报展示与同行提问"},
			{Title: "临床试验沟通", Scenario: "试验方案的跨国讨论"},
			{Title: "药品注册", Scenario: "与监管机构的书面往来"},
		},
	},
	{
		Name: "制造与外贸 Manufacturing & Trade", Category: model.CategoryIndustry,
		MinLevel: model.LevelA2Plus, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "工厂验厂", Scenario: "接待海外客户验厂"},
			{Title: "询盘报价", Scenario: "外贸询盘的往来邮件"},
			{Title: "物流跟进", Scenario: "船期延误的客户沟通"},
		},
	},
	{
		Name: "教育行业 Education Sector", Category: model.CategoryIndustry,
		MinLevel: model.LevelB1, Directions: bothDirs,
		Topics: []PackTopic{
			{Title: "家长会沟通", Scenario: "国际学校家长会"},
			{Title: "课程顾问话术", Scenario: "向外籍家庭介绍课程"},
		},
	},
	// 岗位类
	{
		Name: "产品经理 Product Manager", Category: model.CategoryJobRole,
		MinLevel: model.LevelB1, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "需求评审", Scenario: "PRD评审会的表达"},
			{Title: "路线图汇报", Scenario: "向海外高管讲roadmap"},
			{Title: "竞品分析", Scenario: "竞品对比的结构化输出"},
		},
	},
	{
		Name: "市场与品牌 Marketing & Branding", Category: model.CategoryJobRole,
		MinLevel: model.LevelB1, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "营销方案提案", Scenario: "campaign brief 提案"},
			{Title: "媒介沟通", Scenario: "与海外代理对接投放"},
			{Title: "品牌故事", Scenario: "品牌叙事的英文打磨"},
		},
	},
	{
		Name: "人力资源 HR Professional", Category: model.CategoryJobRole,
		MinLevel: model.LevelA2Plus, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "英文面试", Scenario: "外籍候选人面试全流程"},
			{Title: "绩效反馈", Scenario: "跨文化绩效面谈"},
			{Title: "雇主品牌", Scenario: "海外招聘宣讲"},
		},
	},
	{
		Name: "销售与客户成功 Sales & Customer Success", Category: model.CategoryJobRole,
		MinLevel: model.LevelA2Plus, Directions: bizDirs,
		Topics: []PackTopic{
			{Title: "冷启动开发信", Scenario: "cold email 与 LinkedIn 触达"},
			{Title: "产品演示", Scenario: "在线demo的引导话术"},
			{Title: "续约谈判", Scenario: "续约与升级方案沟通"},
		},
	},
}
