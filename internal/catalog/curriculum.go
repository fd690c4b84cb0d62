package catalog

import "lingua_plan_backend/internal/model"

// TopicTemplate 教材话题模板，生成模块时据此实例化话题
type TopicTemplate struct {
	Title             string
	Description       string
	PracticalScenario string
}

// LevelCurriculum 单个等级的双轨教材：Official 商务轨 / Alternate 生活轨
type LevelCurriculum struct {
	Level     model.CEFRLevel
	Official  []TopicTemplate
	Alternate []TopicTemplate
}

// CurriculumFor 按等级取教材轨，未配置返回 false
func CurriculumFor(level model.CEFRLevel) (LevelCurriculum, bool) {
	for _, c := range Curriculum {
		if c.Level == level {
			return c, true
		}
	}
	return LevelCurriculum{}, false
}

// Curriculum 全量等级教材表，按等级rank升序
var Curriculum = []LevelCurriculum{
	{
		Level: model.LevelPreA1,
		Official: []TopicTemplate{
			{Title: "字母与发音入门 Alphabet & Sounds", Description: "26个字母、基础音标与拼读规则"},
			{Title: "自我介绍 Introducing Yourself", PracticalScenario: "初次见面向同事介绍自己的姓名和职位"},
			{Title: "数字与时间 Numbers & Time", PracticalScenario: "报电话号码、约定会议时间"},
			{Title: "办公室常用物品 Office Objects", Description: "高频名词与this/that句型"},
			{Title: "简单问候与告别 Greetings & Farewells", PracticalScenario: "上下班与同事寒暄"},
		},
		Alternate: []TopicTemplate{
			{Title: "日常问候 Everyday Greetings", PracticalScenario: "邻里和朋友间的问候"},
			{Title: "家庭成员 Family Members", Description: "称谓词汇与所有格"},
			{Title: "购物数字 Shopping Numbers", PracticalScenario: "超市问价与付款"},
			{Title: "我的一天 My Day", Description: "一般现在时与日常活动"},
		},
	},
	{
		Level: model.LevelA1,
		Official: []TopicTemplate{
			{Title: "公司与部门介绍 Company & Departments", PracticalScenario: "向访客介绍公司的基本情况"},
			{Title: "电话留言 Taking Phone Messages", PracticalScenario: "接听电话并记录简单留言"},
			{Title: "日程安排 Scheduling", PracticalScenario: "用日历敲定会议时间"},
			{Title: "简单邮件 Simple Emails", Description: "问候、请求、确认三类短邮件"},
			{Title: "工作指令 Workplace Instructions", PracticalScenario: "听懂并复述上级的简单指令"},
			{Title: "出差问路 Asking for Directions", PracticalScenario: "在陌生城市问路与乘车"},
		},
		Alternate: []TopicTemplate{
			{Title: "点餐用语 Ordering Food", PracticalScenario: "餐厅点餐与结账"},
			{Title: "兴趣爱好 Hobbies", Description: "like/enjoy句型与频率副词"},
			{Title: "天气与季节 Weather & Seasons", PracticalScenario: "闲聊天气打开话题"},
			{Title: "旅行准备 Travel Preparations", PracticalScenario: "订酒店与收拾行李"},
			{Title: "身体与就医 Health Basics", PracticalScenario: "向医生描述简单症状"},
		},
	},
	{
		Level: model.LevelA2,
		Official: []TopicTemplate{
			{Title: "会议常用语 Meeting Basics", PracticalScenario: "参加例会并做简短发言"},
			{Title: "工作汇报入门 Simple Reporting", PracticalScenario: "口头汇报本周工作进展"},
			{Title: "商务邮件规范 Business Email Conventions", Description: "称呼、正文结构与常用套句"},
			{Title: "产品介绍 Describing Products", PracticalScenario: "向客户介绍产品的基本卖点"},
			{Title: "请求与许可 Requests & Permission", Description: "could/would的礼貌表达"},
			{Title: "接待访客 Receiving Visitors", PracticalScenario: "机场接机与公司参观引导"},
		},
		Alternate: []TopicTemplate{
			{Title: "周末计划 Weekend Plans", Description: "be going to与现在进行时表将来"},
			{Title: "购物与退换货 Shopping & Returns", PracticalScenario: "商场退换货沟通"},
			{Title: "租房对话 Renting an Apartment", PracticalScenario: "看房提问与签约要点"},
			{Title: "运动与健身 Sports & Fitness", PracticalScenario: "健身房办卡咨询"},
			{Title: "节日文化 Festivals", Description: "中西方节日差异闲聊"},
		},
	},
	{
		Level: model.LevelA2Plus,
		Official: []TopicTemplate{
			{Title: "电话会议 Conference Calls", PracticalScenario: "远程会议中的提问与确认"},
			{Title: "数据描述入门 Describing Figures", PracticalScenario: "解读简单图表并汇报"},
			{Title: "客户跟进邮件 Follow-up Emails", PracticalScenario: "展会后给潜在客户写跟进邮件"},
			{Title: "日常谈判用语 Everyday Negotiation", PracticalScenario: "与供应商讨论交期"},
			{Title: "跨部门协作 Cross-team Collaboration", PracticalScenario: "请求其他部门支持"},
		},
		Alternate: []TopicTemplate{
			{Title: "餐厅社交 Dining Out", PracticalScenario: "朋友聚餐中的话题延续"},
			{Title: "旅行见闻 Travel Stories", Description: "一般过去时叙事"},
			{Title: "电影与剧集 Movies & Series", PracticalScenario: "推荐一部最近看的剧"},
			{Title: "邻里生活 Neighbourhood Life", PracticalScenario: "物业沟通与社区活动"},
		},
	},
	{
		Level: model.LevelB1,
		Official: []TopicTemplate{
			{Title: "主持小型会议 Chairing Small Meetings", PracticalScenario: "组织议程并控场"},
			{Title: "项目进度汇报 Project Updates", PracticalScenario: "向管理层汇报里程碑与风险"},
			{Title: "商务演示基础 Presentation Basics", PracticalScenario: "10分钟产品演示"},
			{Title: "投诉处理 Handling Complaints", PracticalScenario: "安抚客户并给出解决方案"},
			{Title: "谈判推进 Moving Negotiations Forward", PracticalScenario: "价格与付款条件的让步表达"},
			{Title: "招聘面试英语 Interview English", PracticalScenario: "面试官与候选人双视角练习"},
		},
		Alternate: []TopicTemplate{
			{Title: "社会话题讨论 Social Topics", Description: "表达观点与礼貌反驳"},
			{Title: "理财与消费 Money Matters", PracticalScenario: "讨论预算与消费习惯"},
			{Title: "健康生活方式 Healthy Living", PracticalScenario: "和朋友讨论饮食与作息"},
			{Title: "城市与乡村 City vs Countryside", Description: "比较级与论证展开"},
			{Title: "教育话题 Education Talk", PracticalScenario: "讨论子女教育选择"},
		},
	},
	{
		Level: model.LevelB1Plus,
		Official: []TopicTemplate{
			{Title: "商务谈判策略 Negotiation Strategies", PracticalScenario: "多议题打包谈判"},
			{Title: "季度业务回顾 Quarterly Reviews", PracticalScenario: "用数据讲业务故事"},
			{Title: "跨文化沟通 Cross-cultural Communication", Description: "高低语境差异与邮件语气"},
			{Title: "危机沟通 Crisis Communication", PracticalScenario: "向客户通报延期并重建信任"},
			{Title: "提案写作 Proposal Writing", Description: "问题-方案-收益结构"},
		},
		Alternate: []TopicTemplate{
			{Title: "新闻深读 Reading the News", Description: "新闻语体与立场识别"},
			{Title: "环境议题 Environmental Issues", PracticalScenario: "讨论垃圾分类与低碳生活"},
			{Title: "科技与生活 Technology in Life", PracticalScenario: "讨论智能设备利弊"},
			{Title: "文化差异闲谈 Culture Gaps", PracticalScenario: "与外国朋友聊文化误会"},
		},
	},
	{
		Level: model.LevelB2,
		Official: []TopicTemplate{
			{Title: "高管演讲 Executive Presentations", PracticalScenario: "面向全员的季度演讲"},
			{Title: "复杂谈判 Complex Negotiations", PracticalScenario: "多方利益平衡与条款起草"},
			{Title: "商业分析报告 Analytical Reports", Description: "论证结构与数据引用规范"},
			{Title: "媒体应对 Media Handling", PracticalScenario: "接受行业媒体采访"},
			{Title: "团队领导力语言 Leadership Language", PracticalScenario: "绩效面谈与激励表达"},
			{Title: "行业趋势讨论 Industry Trends", PracticalScenario: "圆桌讨论中的深度观点输出"},
		},
		Alternate: []TopicTemplate{
			{Title: "辩论入门 Debating", Description: "立论、驳论与总结陈词"},
			{Title: "文学与影评 Books & Film Criticism", PracticalScenario: "读书会分享"},
			{Title: "心理与情绪 Psychology & Emotions", PracticalScenario: "深入讨论压力管理"},
			{Title: "全球化话题 Globalisation", Description: "利弊论证与例证展开"},
		},
	},
	{
		Level: model.LevelB2Plus,
		Official: []TopicTemplate{
			{Title: "董事会汇报 Board Reporting", PracticalScenario: "向董事会汇报年度战略"},
			{Title: "并购与合作谈判 M&A Discussions", PracticalScenario: "合作条款的正式磋商"},
			{Title: "白皮书写作 White Papers", Description: "行业白皮书的结构与语体"},
			{Title: "国际会议主持 Moderating International Panels", PracticalScenario: "主持多国嘉宾圆桌"},
			{Title: "说服性沟通 Persuasive Communication", Description: "修辞手法与故事化表达"},
		},
		Alternate: []TopicTemplate{
			{Title: "时事深度讨论 Current Affairs in Depth", Description: "多立场分析与综述"},
			{Title: "艺术与审美 Art & Aesthetics", PracticalScenario: "展览观后交流"},
			{Title: "哲学闲谈 Everyday Philosophy", Description: "抽象概念的口头阐释"},
		},
	},
	{
		Level: model.LevelC1,
		Official: []TopicTemplate{
			{Title: "战略叙事 Strategic Storytelling", PracticalScenario: "向投资人讲公司战略故事"},
			{Title: "高阶公文写作 Executive Writing", Description: "正式公函、备忘录与声明"},
			{Title: "即席演讲 Impromptu Speaking", PracticalScenario: "无准备应答媒体与论坛提问"},
			{Title: "复杂利益斡旋 High-stakes Mediation", PracticalScenario: "跨国团队冲突调解"},
			{Title: "行业思想领导力 Thought Leadership", Description: "专栏文章与主题演讲打磨"},
		},
		Alternate: []TopicTemplate{
			{Title: "学术风格讨论 Academic Discussions", Description: "文献观点综述与批判"},
			{Title: "幽默与反讽 Humour & Irony", PracticalScenario: "识别并得体运用英式幽默"},
			{Title: "演说赏析 Great Speeches", Description: "经典演讲的修辞拆解"},
		},
	},
	{
		Level: model.LevelC1Plus,
		Official: []TopicTemplate{
			{Title: "国际谈判桌 The International Table", PracticalScenario: "多边谈判中的主导与折冲"},
			{Title: "公共演讲大师课 Public Speaking Masterclass", PracticalScenario: "千人场演讲的节奏与互动"},
			{Title: "政策与法规解读 Policy & Regulation", Description: "法律语体精读与转述"},
			{Title: "高管教练式对话 Coaching Conversations", PracticalScenario: "高管一对一辅导对话"},
		},
		Alternate: []TopicTemplate{
			{Title: "跨学科沙龙 Interdisciplinary Salon", Description: "科学、人文话题自由切换"},
			{Title: "创意写作 Creative Writing", Description: "叙事视角与文体实验"},
		},
	},
	{
		Level: model.LevelC2,
		Official: []TopicTemplate{
			{Title: "母语级商务修辞 Native-level Rhetoric", Description: "细微语感与语域自由切换"},
			{Title: "同声转述训练 Consecutive Paraphrasing", PracticalScenario: "会议双语转述"},
			{Title: "专业领域深潜 Domain Deep-dive", Description: "按学员行业定制的专家级研讨"},
		},
		Alternate: []TopicTemplate{
			{Title: "文体风格实验室 Style Laboratory", Description: "从小说到社论的全文体驾驭"},
			{Title: "即兴辩论 Open Debate", PracticalScenario: "任意命题的即席辩论"},
		},
	},
}
